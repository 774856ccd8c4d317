package port

type TokenPayload struct {
	Role string
}

const RoleOperator = "operator"

//go:generate mockgen -source=auth.go -destination=mock/auth.go -package=mock
type TokenService interface {
	CreateToken(role string) (string, error)
	VerifyToken(token string) (*TokenPayload, error)
	CheckPassword(password string) error
}
