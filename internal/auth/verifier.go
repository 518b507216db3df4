package auth

import (
	"context"
	"fmt"
	"review_platform/configs"
	"review_platform/util"
)

// UserData is the identity resolved from a verified bearer token.
// UserId is the only field trusted for ownership checks.
type UserData struct {
	UserId   string `json:"userId"`
	Username string `json:"username"`
}

type IVerifier interface {
	Verify(ctx context.Context, token string) (*UserData, error)
}

// NewVerifier picks the identity provider from configs.
func NewVerifier(ctx context.Context) (IVerifier, error) {
	switch configs.GetConfigs().AuthProvider {
	case "firebase":
		return NewFirebaseVerifier(ctx)
	case "jwt", "":
		return NewJwtVerifier(), nil
	}
	return nil, fmt.Errorf("unknown auth provider: %s", configs.GetConfigs().AuthProvider)
}

//------------------------------------------
//------------------------------------------

type JwtVerifier struct{}

func NewJwtVerifier() *JwtVerifier {
	return &JwtVerifier{}
}

func (v *JwtVerifier) Verify(ctx context.Context, tokenString string) (*UserData, error) {
	token, claims, err := util.VerifyToken(tokenString)
	if err != nil {
		return nil, err
	}
	if token == nil || claims == nil || claims.UserId == "" {
		return nil, fmt.Errorf("invalid token metaData")
	}
	return &UserData{
		UserId:   claims.UserId,
		Username: claims.Username,
	}, nil
}
