package firestore

import (
	"context"
	"errors"
	"fmt"
	"os"

	"golang.org/x/oauth2/google"
	fs "google.golang.org/api/firestore/v1"
	"google.golang.org/api/option"

	"github.com/maele-app/maele-cli/internal/core/domain"
	"github.com/maele-app/maele-cli/internal/core/ports/driven"
	"github.com/maele-app/maele-cli/internal/logger"
)

// Ensure Store implements the interface.
var _ driven.ProverbStore = (*Store)(nil)

// DefaultCollection is the collection holding proverb records.
const DefaultCollection = "proverbs"

// listPageSize bounds one page of a collection read.
const listPageSize = 300

// ErrNoCredentials indicates neither inline credentials nor a key file
// was supplied.
var ErrNoCredentials = errors.New("firestore: no service-account credentials supplied")

// Config configures the Firestore store.
type Config struct {
	// CredentialsJSON is a service-account key document. Takes precedence
	// over CredentialsFile.
	CredentialsJSON []byte

	// CredentialsFile is a path to a service-account key file.
	CredentialsFile string

	// Collection overrides DefaultCollection.
	Collection string

	// RateLimit overrides DefaultRateLimit.
	RateLimit RateLimitConfig
}

// Store is a Firestore-backed implementation of driven.ProverbStore.
type Store struct {
	docs       *fs.ProjectsDatabasesDocumentsService
	parent     string
	collection string
	limiter    *RateLimiter
}

// New creates a Firestore store from service-account credentials.
// The project ID is read from the credential document; a credential
// without one is rejected.
func New(ctx context.Context, cfg Config) (*Store, error) {
	data := cfg.CredentialsJSON
	if len(data) == 0 {
		if cfg.CredentialsFile == "" {
			return nil, ErrNoCredentials
		}
		var err error
		data, err = os.ReadFile(cfg.CredentialsFile)
		if err != nil {
			return nil, fmt.Errorf("reading credentials file: %w", err)
		}
	}

	creds, err := google.CredentialsFromJSON(ctx, data, fs.DatastoreScope)
	if err != nil {
		return nil, fmt.Errorf("parsing credentials: %w", err)
	}
	if creds.ProjectID == "" {
		return nil, errors.New("firestore: credentials carry no project_id")
	}

	svc, err := fs.NewService(ctx, option.WithTokenSource(creds.TokenSource))
	if err != nil {
		return nil, fmt.Errorf("creating firestore service: %w", err)
	}

	collection := cfg.Collection
	if collection == "" {
		collection = DefaultCollection
	}

	return &Store{
		docs:       svc.Projects.Databases.Documents,
		parent:     fmt.Sprintf("projects/%s/databases/(default)/documents", creds.ProjectID),
		collection: collection,
		limiter:    NewRateLimiter(cfg.RateLimit),
	}, nil
}

// List streams the full collection, following pagination.
func (s *Store) List(ctx context.Context) ([]domain.Proverb, error) {
	var proverbs []domain.Proverb
	pageToken := ""

	for {
		if err := s.limiter.Wait(ctx); err != nil {
			return nil, err
		}

		call := s.docs.ListDocuments(s.parent, s.collection).
			PageSize(listPageSize).
			Context(ctx)
		if pageToken != "" {
			call = call.PageToken(pageToken)
		}

		resp, err := call.Do()
		if err != nil {
			return nil, fmt.Errorf("listing documents: %w", s.wrap(err))
		}

		for _, doc := range resp.Documents {
			proverbs = append(proverbs, fromDocument(doc))
		}

		if resp.NextPageToken == "" {
			break
		}
		pageToken = resp.NextPageToken
	}

	logger.Debug("firestore: listed %d document(s)", len(proverbs))
	return proverbs, nil
}

// Add persists a new record and returns the store-assigned document ID.
func (s *Store) Add(ctx context.Context, p domain.Proverb) (string, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return "", err
	}

	created, err := s.docs.CreateDocument(s.parent, s.collection, toDocument(p)).
		Context(ctx).
		Do()
	if err != nil {
		return "", fmt.Errorf("creating document: %w", s.wrap(err))
	}

	return fromDocument(created).ID, nil
}

// Set overwrites the record with the given identifier in full.
func (s *Store) Set(ctx context.Context, id string, p domain.Proverb) error {
	if err := s.limiter.Wait(ctx); err != nil {
		return err
	}

	doc := toDocument(p)
	doc.Name = s.documentName(id)
	if _, err := s.docs.Patch(doc.Name, doc).Context(ctx).Do(); err != nil {
		return fmt.Errorf("updating document %s: %w", id, s.wrap(err))
	}
	return nil
}

// Delete removes the record with the given identifier.
func (s *Store) Delete(ctx context.Context, id string) error {
	if err := s.limiter.Wait(ctx); err != nil {
		return err
	}

	if _, err := s.docs.Delete(s.documentName(id)).Context(ctx).Do(); err != nil {
		return fmt.Errorf("deleting document %s: %w", id, s.wrap(err))
	}
	return nil
}

func (s *Store) documentName(id string) string {
	return s.parent + "/" + s.collection + "/" + id
}

// wrap classifies an API error and, on a 429, backs the limiter off
// before the next call.
func (s *Store) wrap(err error) error {
	werr := WrapError(err)
	if errors.Is(werr, ErrRateLimited) {
		s.limiter.RecordRateLimitError(retryAfterSeconds(err))
	}
	return werr
}
