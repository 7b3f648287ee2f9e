package main

import (
	"github.com/pulumi/pulumi/sdk/v3/go/pulumi"

	"github.com/hugmob/hugger-backend/infra/cloudrun"
	"github.com/hugmob/hugger-backend/infra/docker"
	"github.com/hugmob/hugger-backend/infra/firestore"
	"github.com/hugmob/hugger-backend/infra/identity"
	"github.com/hugmob/hugger-backend/infra/provider"
)

func main() {
	pulumi.Run(func(ctx *pulumi.Context) error {
		// default provider pinned to the target project/region
		prov, err := provider.SetupDefaultProvider(ctx)
		if err != nil {
			return err
		}

		// Identity Platform with email sign-in (Firebase auth)
		ident, err := identity.SetupIdentity(ctx)
		if err != nil {
			return err
		}

		// Firestore native database for user profiles
		err = firestore.SetupFirestore(ctx, prov)
		if err != nil {
			return err
		}

		// artifact registry repo for the API image
		repo, err := docker.CreateCloudrunRepo(ctx)
		if err != nil {
			return err
		}

		_, err = cloudrun.SetupCloudRun(ctx, prov, ident, repo)
		if err != nil {
			return err
		}

		return nil
	})
}
