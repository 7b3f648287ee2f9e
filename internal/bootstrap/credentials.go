package bootstrap

import (
	"encoding/json"
	"strings"

	"google.golang.org/api/option"

	"github.com/hugmob/hugger-backend/internal/config"
)

type serviceAccount struct {
	Type         string `json:"type"`
	ProjectID    string `json:"project_id"`
	PrivateKeyID string `json:"private_key_id"`
	PrivateKey   string `json:"private_key"`
	ClientEmail  string `json:"client_email"`
	ClientID     string `json:"client_id"`
	AuthURI      string `json:"auth_uri"`
	TokenURI     string `json:"token_uri"`
}

// credentialOptions assembles explicit service-account credentials from
// the environment. With no key material configured it returns nil and
// the SDKs use application default credentials.
func credentialOptions(cfg *config.Config) []option.ClientOption {
	if !cfg.HasServiceAccount() {
		return nil
	}

	sa := serviceAccount{
		Type:         "service_account",
		ProjectID:    cfg.ProjectID,
		PrivateKeyID: cfg.FirebasePrivateKeyID,
		// env vars carry the key with escaped newlines
		PrivateKey:  strings.ReplaceAll(cfg.FirebasePrivateKey, `\n`, "\n"),
		ClientEmail: cfg.FirebaseClientEmail,
		ClientID:    cfg.FirebaseClientID,
		AuthURI:     "https://accounts.google.com/o/oauth2/auth",
		TokenURI:    "https://oauth2.googleapis.com/token",
	}

	b, err := json.Marshal(sa)
	if err != nil {
		return nil
	}

	return []option.ClientOption{option.WithCredentialsJSON(b)}
}
