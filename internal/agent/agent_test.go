package agent_test

import (
	"context"
	"testing"
	"time"

	"estate/internal/agent"
	"estate/pkg/domain"
	"estate/pkg/serrors"
	mocksessionstore "estate/pkg/sessionstore/mock"
	mockstorage "estate/pkg/storage/mock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newService(t *testing.T) (agent.Agents, *mockstorage.MockStorage, *mocksessionstore.MockStore) {
	t.Helper()
	ctrl := gomock.NewController(t)
	strg := mockstorage.NewMockStorage(ctrl)
	sessions := mocksessionstore.NewMockStore(ctrl)

	return agent.New(strg, sessions), strg, sessions
}

func validForm() agent.ProfileForm {
	return agent.ProfileForm{
		Name:      " Priya Sharma ",
		Title:     "Senior Agent",
		Location:  "Mumbai",
		Phone:     "+91 98200 00000",
		Email:     "Priya@Example.com",
		Facebook:  "facebook.com/priya",
		Instagram: "",
		WhatsApp:  "9820000000",
	}
}

func TestList(t *testing.T) {
	svc, strg, _ := newService(t)

	strg.EXPECT().Agents(gomock.Any(), uint(agent.MaxAgents)).Return([]domain.AgentProfile{{Name: "A"}}, nil)
	res, err := svc.List(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, res, 1)

	strg.EXPECT().Agents(gomock.Any(), uint(10)).Return(nil, nil)
	_, err = svc.List(context.Background(), 10)
	require.NoError(t, err)
}

func TestGet(t *testing.T) {
	svc, strg, _ := newService(t)
	ID := domain.AgentID(uuid.New())

	strg.EXPECT().AgentByID(gomock.Any(), ID).Return(nil, nil)
	_, err := svc.Get(context.Background(), ID)
	require.ErrorIs(t, err, serrors.ErrNotFound)
}

func TestUpdateProfile(t *testing.T) {
	svc, strg, sessions := newService(t)
	session := domain.NewSession(domain.UserID(uuid.New()), domain.RoleAgent, time.Now())

	sessions.EXPECT().Get(gomock.Any(), session.ID).Return(&session, nil)
	strg.EXPECT().UpsertAgentProfile(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, p domain.AgentProfile) (*domain.AgentProfile, error) {
			require.Equal(t, session.UserID, p.UserID)
			require.Equal(t, "Priya Sharma", p.Name)
			require.Equal(t, "priya@example.com", p.Email)
			require.Equal(t, "https://facebook.com/priya", p.Social.Facebook)
			require.Empty(t, p.Social.Instagram)
			p.ID = domain.AgentID(uuid.New())

			return &p, nil
		})

	res, err := svc.UpdateProfile(context.Background(), session.ID, validForm())
	require.NoError(t, err)
	require.Equal(t, "Senior Agent", res.Title)
}

func TestUpdateProfile_Invalid(t *testing.T) {
	forms := map[string]func(f *agent.ProfileForm){
		"short name":     func(f *agent.ProfileForm) { f.Name = "P" },
		"short title":    func(f *agent.ProfileForm) { f.Title = " " },
		"short location": func(f *agent.ProfileForm) { f.Location = "X" },
		"short phone":    func(f *agent.ProfileForm) { f.Phone = "123" },
		"bad email":      func(f *agent.ProfileForm) { f.Email = "priya" },
		"bad link":       func(f *agent.ProfileForm) { f.Twitter = "ftp://twitter.com/p" },
		"short whatsapp": func(f *agent.ProfileForm) { f.WhatsApp = "12" },
	}
	for name, mutate := range forms {
		t.Run(name, func(t *testing.T) {
			svc, _, sessions := newService(t)
			session := domain.NewSession(domain.UserID(uuid.New()), domain.RoleAgent, time.Now())
			sessions.EXPECT().Get(gomock.Any(), session.ID).Return(&session, nil)

			form := validForm()
			mutate(&form)
			_, err := svc.UpdateProfile(context.Background(), session.ID, form)
			require.ErrorIs(t, err, serrors.ErrBadRequest)
		})
	}
}

func TestProfile_AgentsOnly(t *testing.T) {
	svc, _, sessions := newService(t)
	session := domain.NewSession(domain.UserID(uuid.New()), domain.RoleUser, time.Now())

	sessions.EXPECT().Get(gomock.Any(), session.ID).Return(&session, nil).Times(2)

	_, err := svc.Profile(context.Background(), session.ID)
	require.ErrorIs(t, err, serrors.ErrForbidden)
	_, err = svc.UpdateProfile(context.Background(), session.ID, validForm())
	require.ErrorIs(t, err, serrors.ErrForbidden)
}

func TestProfile(t *testing.T) {
	svc, strg, sessions := newService(t)
	session := domain.NewSession(domain.UserID(uuid.New()), domain.RoleAgent, time.Now())

	sessions.EXPECT().Get(gomock.Any(), session.ID).Return(&session, nil).Times(2)
	strg.EXPECT().AgentByUserID(gomock.Any(), session.UserID).Return(&domain.AgentProfile{Name: "Priya"}, nil)
	res, err := svc.Profile(context.Background(), session.ID)
	require.NoError(t, err)
	require.Equal(t, "Priya", res.Name)

	strg.EXPECT().AgentByUserID(gomock.Any(), session.UserID).Return(nil, nil)
	_, err = svc.Profile(context.Background(), session.ID)
	require.ErrorIs(t, err, serrors.ErrNotFound)
}
