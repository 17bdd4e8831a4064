package constants

import "fmt"

const (
	RoleStudent    = "student"
	RoleInstructor = "instructor"
)

// Templates de mensagem de erro por role
const (
	ErrOnlyInstructorsCanAccess = "❌ Apenas instrutores podem acessar %s."
	ErrOnlyStudentsCanAccess    = "❌ Apenas alunos podem acessar %s."
	ErrStudentNotAuthorized     = "Sua conta ainda aguarda autorização do instrutor."
)

func RoleErrorInstructor(feature string) string {
	return fmt.Sprintf(ErrOnlyInstructorsCanAccess, feature)
}

func RoleErrorStudent(feature string) string {
	return fmt.Sprintf(ErrOnlyStudentsCanAccess, feature)
}

var (
	AllRoles = []string{
		RoleStudent,
		RoleInstructor,
	}

	InstructorOnly = []string{
		RoleInstructor,
	}

	StudentOnly = []string{
		RoleStudent,
	}
)
