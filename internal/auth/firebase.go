package auth

import (
	"context"
	"review_platform/configs"

	firebase "firebase.google.com/go/v4"
	firebaseauth "firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"
)

// FirebaseVerifier resolves bearer tokens through the Firebase Admin SDK.
type FirebaseVerifier struct {
	authClient *firebaseauth.Client
}

func NewFirebaseVerifier(ctx context.Context) (*FirebaseVerifier, error) {
	opt := option.WithCredentialsFile(configs.GetConfigs().FirebaseCredentialsFile)
	app, err := firebase.NewApp(ctx, nil, opt)
	if err != nil {
		return nil, err
	}
	authClient, err := app.Auth(ctx)
	if err != nil {
		return nil, err
	}
	return &FirebaseVerifier{authClient: authClient}, nil
}

func (v *FirebaseVerifier) Verify(ctx context.Context, token string) (*UserData, error) {
	decoded, err := v.authClient.VerifyIDToken(ctx, token)
	if err != nil {
		return nil, err
	}
	username, _ := decoded.Claims["name"].(string)
	return &UserData{
		UserId:   decoded.UID,
		Username: username,
	}, nil
}
