package main

import (
	"fmt"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
)

// TokenCredentialFactory creates the management-plane credential. It exists so
// tests can swap it out.
type TokenCredentialFactory func(kind string) (azcore.TokenCredential, error)

// DefaultTokenCredentialFactory returns an Azure CLI credential for "cli" and
// the azidentity default chain for "default".
func DefaultTokenCredentialFactory(kind string) (azcore.TokenCredential, error) {
	switch kind {
	case CredentialCLI:
		cred, err := azidentity.NewAzureCLICredential(nil)
		if err != nil {
			return nil, err
		}
		return cred, nil
	case CredentialDefault:
		cred, err := azidentity.NewDefaultAzureCredential(nil)
		if err != nil {
			return nil, err
		}
		return cred, nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownCredential, kind)
}
