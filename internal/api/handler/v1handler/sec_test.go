package v1handler_test

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"testing"
	"time"

	mockaccount "estate/internal/account/mock"
	"estate/internal/api/handler/v1handler"
	"estate/pkg/authtoken"
	"estate/pkg/domain"
	"estate/pkg/serrors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func genRSAKeys(tb testing.TB) (string, string) {
	tb.Helper()
	priv, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(tb, err)
	privPEM := pem.EncodeToMemory(&pem.Block{Type: "RSA PRIVATE KEY", Bytes: x509.MarshalPKCS1PrivateKey(priv)})
	pubASN1, err := x509.MarshalPKIXPublicKey(&priv.PublicKey)
	require.NoError(tb, err)
	pubPEM := pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: pubASN1})

	return string(privPEM), string(pubPEM)
}

type keys struct {
	signer *authtoken.Signer
	pubPEM string
}

func newKeys(tb testing.TB) keys {
	tb.Helper()
	privPEM, pubPEM := genRSAKeys(tb)
	signer, err := authtoken.NewSigner(privPEM, "estate", time.Hour)
	require.NoError(tb, err)

	return keys{signer: signer, pubPEM: pubPEM}
}

func (k keys) token(tb testing.TB, session domain.Session) string {
	tb.Helper()
	raw, _, err := k.signer.Sign(session)
	require.NoError(tb, err)

	return raw
}

func TestNewSecHandler_InvalidKey(t *testing.T) {
	_, err := v1handler.NewSecHandler(&v1handler.SecHandlerOptions{PublicKey: "not a key"}, nil)
	require.Error(t, err)
}

func TestHandleBearerAuth(t *testing.T) {
	ctrl := gomock.NewController(t)
	k := newKeys(t)
	accounts := mockaccount.NewMockAccounts(ctrl)
	sec, err := v1handler.NewSecHandler(&v1handler.SecHandlerOptions{PublicKey: k.pubPEM, Issuer: "estate"}, accounts)
	require.NoError(t, err)

	session := domain.NewSession(domain.UserID(uuid.New()), domain.RoleUser, time.Now())
	raw := k.token(t, session)

	t.Run("live session", func(t *testing.T) {
		accounts.EXPECT().Session(gomock.Any(), session.ID).Return(&session, nil)

		ctx, err := sec.HandleBearerAuth(context.Background(), raw)
		require.NoError(t, err)
		require.Equal(t, session.UserID, ctx.Value(v1handler.UserIDKey))
		got, ok := v1handler.SessionFrom(ctx)
		require.True(t, ok)
		require.Equal(t, session.ID, got.ID)
	})

	t.Run("ended session", func(t *testing.T) {
		accounts.EXPECT().Session(gomock.Any(), session.ID).
			Return(nil, serrors.With(serrors.ErrUnauthorized, "session ended"))

		_, err := sec.HandleBearerAuth(context.Background(), raw)
		require.ErrorIs(t, err, serrors.ErrUnauthorized)
	})

	t.Run("session of another user", func(t *testing.T) {
		other := session
		other.UserID = domain.UserID(uuid.New())
		accounts.EXPECT().Session(gomock.Any(), session.ID).Return(&other, nil)

		_, err := sec.HandleBearerAuth(context.Background(), raw)
		require.ErrorIs(t, err, serrors.ErrUnauthorized)
	})

	t.Run("garbage token", func(t *testing.T) {
		_, err := sec.HandleBearerAuth(context.Background(), "abc.def.ghi")
		require.ErrorIs(t, err, serrors.ErrUnauthorized)
	})
}

func TestSessionFrom_Empty(t *testing.T) {
	_, ok := v1handler.SessionFrom(context.Background())
	require.False(t, ok)
}
