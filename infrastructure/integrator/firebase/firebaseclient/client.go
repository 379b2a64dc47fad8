package firebaseclient

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"

	firebasedomain "github.com/martonai/revenue-dashboard-api/infrastructure/integrator/firebase/domain"
	"github.com/martonai/revenue-dashboard-api/internal/config"
	"github.com/martonai/revenue-dashboard-api/internal/domain"
)

const (
	usersCollection    = "users"
	projectsCollection = "projects"
)

// Client é o acesso de leitura à base de usuários do produto.
type Client interface {
	ListUsers(ctx context.Context) ([]firebasedomain.UserRecord, error)
	CountProjects(ctx context.Context) (int, error)
	Close() error
}

type FirestoreClient struct {
	client *firestore.Client
}

// NewClient abre a conexão com o Firestore usando o service account montado
// a partir das variáveis de ambiente.
func NewClient(ctx context.Context, cfg *config.Config) (Client, error) {
	client, err := firestore.NewClient(
		ctx,
		cfg.Firebase.ProjectID,
		option.WithCredentialsJSON(cfg.Firebase.CredentialsJSON()),
	)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao conectar no firestore")
	}

	return &FirestoreClient{client: client}, nil
}

func (c *FirestoreClient) ListUsers(ctx context.Context) ([]firebasedomain.UserRecord, error) {
	iter := c.client.Collection(usersCollection).Documents(ctx)
	defer iter.Stop()

	users := make([]firebasedomain.UserRecord, 0)
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Wrapf(domain.ErrDataSource, "erro ao iterar a coleção de usuários: %v", err)
		}

		var user firebasedomain.UserRecord
		if err := doc.DataTo(&user); err != nil {
			// Documento malformado não derruba a coleta inteira
			continue
		}
		user.ID = doc.Ref.ID

		users = append(users, user)
	}

	return users, nil
}

func (c *FirestoreClient) CountProjects(ctx context.Context) (int, error) {
	iter := c.client.Collection(projectsCollection).Documents(ctx)
	defer iter.Stop()

	count := 0
	for {
		_, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return 0, errors.Wrapf(domain.ErrDataSource, "erro ao iterar a coleção de projetos: %v", err)
		}
		count++
	}

	return count, nil
}

func (c *FirestoreClient) Close() error {
	return c.client.Close()
}
