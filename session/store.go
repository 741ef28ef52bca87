//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=../mocks/mock_session_store.go -package=mocks
package session

import "context"

// IStore issues and resolves session tokens. Token issuance belongs to the
// authentication collaborator; the chat core only ever resolves.
type IStore interface {
	Issue(ctx context.Context, userID string) (string, error)
	Resolve(ctx context.Context, token string) (string, bool, error)
	Revoke(ctx context.Context, token string) error
}
