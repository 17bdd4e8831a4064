// file: internals/helpers/swimtime/swimtime.go
//
// Codec de tempo de natação: converte entre a string digitada pelo nadador
// ("M:SS" ou "MM:SS:CC") e segundos numéricos, e formata de volta para
// exibição (relógio ou notação de prova).
package swimtime

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ParseClock aceita "M:SS" ou "MM:SS" (minutos sem limite, segundos 0–59).
// Entrada vazia vale 0 segundos — o chamador trata como "ainda sem tempo".
func ParseClock(input string) (int, error) {
	s := strings.TrimSpace(input)
	if s == "" {
		return 0, nil
	}

	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("swimtime: tempo %q fora do formato M:SS", input)
	}
	min, err := strconv.Atoi(parts[0])
	if err != nil || min < 0 {
		return 0, fmt.Errorf("swimtime: minutos inválidos em %q", input)
	}
	sec, err := strconv.Atoi(parts[1])
	if err != nil || sec < 0 || sec > 59 {
		return 0, fmt.Errorf("swimtime: segundos inválidos em %q", input)
	}
	return min*60 + sec, nil
}

// ParseMeet aceita "MM:SS:CC" (centésimos 0–99) e devolve segundos com
// precisão de centésimo.
func ParseMeet(input string) (float64, error) {
	s := strings.TrimSpace(input)
	if s == "" {
		return 0, nil
	}

	parts := strings.Split(s, ":")
	if len(parts) != 3 {
		return 0, fmt.Errorf("swimtime: tempo %q fora do formato MM:SS:CC", input)
	}
	min, err := strconv.Atoi(parts[0])
	if err != nil || min < 0 {
		return 0, fmt.Errorf("swimtime: minutos inválidos em %q", input)
	}
	sec, err := strconv.Atoi(parts[1])
	if err != nil || sec < 0 || sec > 59 {
		return 0, fmt.Errorf("swimtime: segundos inválidos em %q", input)
	}
	centi, err := strconv.Atoi(parts[2])
	if err != nil || centi < 0 || centi > 99 {
		return 0, fmt.Errorf("swimtime: centésimos inválidos em %q", input)
	}
	return float64(min*60+sec) + float64(centi)/100, nil
}

// NormalizeDigits reformata dígitos crus conforme o nadador digita:
// os dois primeiros viram minutos, os dois seguintes segundos e o excedente
// centésimos ("MM:SS:CC"). Valores acima do máximo são truncados para o
// máximo válido (59/99) em vez de rejeitados; dígitos além de seis são
// descartados.
func NormalizeDigits(raw string) string {
	var digits strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	d := digits.String()
	if len(d) > 6 {
		d = d[:6]
	}

	switch {
	case len(d) <= 2:
		return d
	case len(d) <= 4:
		return d[:2] + ":" + clampPart(d[2:], 59)
	default:
		return d[:2] + ":" + clampPart(d[2:4], 59) + ":" + clampPart(d[4:], 99)
	}
}

func clampPart(p string, max int) string {
	if len(p) < 2 {
		return p // parte ainda incompleta, nada a truncar
	}
	n, err := strconv.Atoi(p)
	if err != nil {
		return p
	}
	if n > max {
		return strconv.Itoa(max)
	}
	return p
}

// FormatClock devolve "M:SS" (zero vira "0:00").
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}

// FormatMeet devolve a notação de prova M'SS"CC; abaixo de um minuto o
// segmento de minutos é omitido (SS"CC).
func FormatMeet(seconds float64) string {
	if seconds < 0 {
		seconds = 0
	}
	total := int(math.Round(seconds * 100))
	min := total / 6000
	sec := (total % 6000) / 100
	centi := total % 100

	if min == 0 {
		return fmt.Sprintf("%02d\"%02d", sec, centi)
	}
	return fmt.Sprintf("%d'%02d\"%02d", min, sec, centi)
}
