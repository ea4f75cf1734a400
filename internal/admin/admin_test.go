package admin_test

import (
	"context"
	"os"
	"testing"
	"time"

	"estate/internal/admin"
	"estate/pkg/domain"
	mockidentity "estate/pkg/identity/mock"
	"estate/pkg/logger"
	"estate/pkg/serrors"
	mockstorage "estate/pkg/storage/mock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.TestEnvironment)
	os.Exit(m.Run())
}

func newService(t *testing.T) (admin.Admin, *mockstorage.MockStorage, *mockidentity.MockProvider) {
	t.Helper()
	ctrl := gomock.NewController(t)
	strg := mockstorage.NewMockStorage(ctrl)
	provider := mockidentity.NewMockProvider(ctrl)

	return admin.New(strg, provider), strg, provider
}

func session(role domain.Role) domain.Session {
	return domain.NewSession(domain.UserID(uuid.New()), role, time.Now())
}

func TestNonAdminsAreRejected(t *testing.T) {
	svc, _, _ := newService(t)
	ctx := context.Background()

	for _, actor := range []domain.Session{session(domain.RoleUser), session(domain.RoleAgent)} {
		_, err := svc.Users(ctx, actor, "")
		require.ErrorIs(t, err, serrors.ErrForbidden)
		_, err = svc.Block(ctx, actor, domain.UserID(uuid.New()))
		require.ErrorIs(t, err, serrors.ErrForbidden)
		_, err = svc.Approve(ctx, actor, domain.PropertyID(uuid.New()))
		require.ErrorIs(t, err, serrors.ErrForbidden)
		require.ErrorIs(t, svc.Remove(ctx, actor, domain.PropertyID(uuid.New())), serrors.ErrForbidden)
		_, err = svc.PaymentGateways(ctx, actor)
		require.ErrorIs(t, err, serrors.ErrForbidden)
	}

	_, err := svc.Properties(ctx, domain.Session{}, "")
	require.ErrorIs(t, err, serrors.ErrUnauthorized)
}

func TestUsers(t *testing.T) {
	svc, strg, _ := newService(t)

	strg.EXPECT().SearchUsers(gomock.Any(), "jane", uint(admin.MaxResults)).Return([]domain.User{{Name: "Jane"}}, nil)

	res, err := svc.Users(context.Background(), session(domain.RoleAdmin), "  jane ")
	require.NoError(t, err)
	require.Len(t, res, 1)
}

func TestBlock(t *testing.T) {
	svc, _, provider := newService(t)
	actor := session(domain.RoleAdmin)
	target := domain.UserID(uuid.New())

	provider.EXPECT().SetStatus(gomock.Any(), target, domain.UserStatusBlocked).
		Return(&domain.User{ID: target, Status: domain.UserStatusBlocked}, nil)
	user, err := svc.Block(context.Background(), actor, target)
	require.NoError(t, err)
	require.True(t, user.IsBlocked())

	provider.EXPECT().SetStatus(gomock.Any(), target, domain.UserStatusActive).
		Return(&domain.User{ID: target, Status: domain.UserStatusActive}, nil)
	user, err = svc.Unblock(context.Background(), actor, target)
	require.NoError(t, err)
	require.False(t, user.IsBlocked())
}

func TestBlock_Self(t *testing.T) {
	svc, _, _ := newService(t)
	actor := session(domain.RoleAdmin)

	_, err := svc.Block(context.Background(), actor, actor.UserID)
	require.ErrorIs(t, err, serrors.ErrBadRequest)
}

func TestApproveAndRemove(t *testing.T) {
	svc, strg, _ := newService(t)
	actor := session(domain.RoleAdmin)
	ID := domain.PropertyID(uuid.New())

	strg.EXPECT().UpdatePropertyStatus(gomock.Any(), ID, domain.PropertyStatusActive).
		Return(&domain.Property{ID: ID, Status: domain.PropertyStatusActive}, nil)
	p, err := svc.Approve(context.Background(), actor, ID)
	require.NoError(t, err)
	require.Equal(t, domain.PropertyStatusActive, p.Status)

	strg.EXPECT().UpdatePropertyStatus(gomock.Any(), ID, domain.PropertyStatusActive).Return(nil, nil)
	_, err = svc.Approve(context.Background(), actor, ID)
	require.ErrorIs(t, err, serrors.ErrNotFound)

	strg.EXPECT().DeleteProperty(gomock.Any(), ID).Return(true, nil)
	require.NoError(t, svc.Remove(context.Background(), actor, ID))

	strg.EXPECT().DeleteProperty(gomock.Any(), ID).Return(false, nil)
	require.ErrorIs(t, svc.Remove(context.Background(), actor, ID), serrors.ErrNotFound)
}

func TestProperties(t *testing.T) {
	svc, strg, _ := newService(t)

	strg.EXPECT().SearchProperties(gomock.Any(), "owner@b.co", uint(admin.MaxResults)).Return(nil, nil)

	_, err := svc.Properties(context.Background(), session(domain.RoleAdmin), "owner@b.co")
	require.NoError(t, err)
}

func TestUpdatePaymentGateway(t *testing.T) {
	svc, strg, _ := newService(t)
	actor := session(domain.RoleAdmin)

	strg.EXPECT().UpdatePaymentGateway(gomock.Any(), domain.PaymentGateway{
		Name: domain.GatewayRazorpay, Enabled: true, Config: map[string]string{},
	}).Return(&domain.PaymentGateway{Name: domain.GatewayRazorpay, Enabled: true}, nil)
	res, err := svc.UpdatePaymentGateway(context.Background(), actor, domain.PaymentGateway{
		Name: domain.GatewayRazorpay, Enabled: true,
	})
	require.NoError(t, err)
	require.True(t, res.Enabled)

	strg.EXPECT().UpdatePaymentGateway(gomock.Any(), gomock.Any()).Return(nil, nil)
	_, err = svc.UpdatePaymentGateway(context.Background(), actor, domain.PaymentGateway{Name: "bitcoin"})
	require.ErrorIs(t, err, serrors.ErrNotFound)

	strg.EXPECT().PaymentGateways(gomock.Any()).Return([]domain.PaymentGateway{{Name: domain.GatewayQRCode}}, nil)
	list, err := svc.PaymentGateways(context.Background(), actor)
	require.NoError(t, err)
	require.Len(t, list, 1)
}
