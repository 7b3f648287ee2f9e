package store

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/hugmob/hugger-backend/internal/errs"
	"github.com/hugmob/hugger-backend/internal/models"
)

type userStore struct {
	Client     *firestore.Client
	Collection *firestore.CollectionRef
}

func NewUserStore(client *firestore.Client) *userStore {
	return &userStore{
		Client:     client,
		Collection: client.Collection("users"),
	}
}

func (us *userStore) Get(ctx context.Context, uid string) (*models.User, error) {
	doc, err := us.Collection.Doc(uid).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errs.NewNotFoundError("no profile found for uid " + uid)
		}
		return nil, errs.NewExternalServiceError("store", err.Error())
	}

	var user models.User
	if err := doc.DataTo(&user); err != nil {
		return nil, errs.NewExternalServiceError("store", err.Error())
	}
	return &user, nil
}

// Merge writes the given fields with merge semantics: untouched fields
// survive, and a missing document is created holding only these fields.
func (us *userStore) Merge(ctx context.Context, uid string, fields map[string]any) error {
	if _, err := us.Collection.Doc(uid).Set(ctx, fields, firestore.MergeAll); err != nil {
		return errs.NewExternalServiceError("store", err.Error())
	}
	return nil
}

func (us *userStore) List(ctx context.Context) ([]*models.User, error) {
	return us.collect(ctx, us.Collection.Documents(ctx))
}

func (us *userStore) ListByType(ctx context.Context, userType models.UserType) ([]*models.User, error) {
	q := us.Collection.Where("userType", "==", string(userType))
	return us.collect(ctx, q.Documents(ctx))
}

// GetByUIDs loads the given profiles, silently skipping uids with no
// document.
func (us *userStore) GetByUIDs(ctx context.Context, uids []string) ([]*models.User, error) {
	users := make([]*models.User, 0, len(uids))

	for _, uid := range uids {
		user, err := us.Get(ctx, uid)
		if err != nil {
			if _, ok := err.(*errs.NotFoundError); ok {
				continue
			}
			return nil, err
		}
		users = append(users, user)
	}

	return users, nil
}

func (us *userStore) collect(ctx context.Context, it *firestore.DocumentIterator) ([]*models.User, error) {
	defer it.Stop()

	var users []*models.User
	for {
		doc, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errs.NewExternalServiceError("store", err.Error())
		}

		var user models.User
		if err := doc.DataTo(&user); err != nil {
			return nil, errs.NewExternalServiceError("store", err.Error())
		}
		users = append(users, &user)
	}

	return users, nil
}
