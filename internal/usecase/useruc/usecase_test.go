package useruc

import (
	"context"
	"errors"
	"testing"

	"nexachain-backend/internal/domain/user"
	"nexachain-backend/internal/testutil/memstore"
	"nexachain-backend/internal/testutil/usermock"
)

func TestRegister_RootUser(t *testing.T) {
	s := memstore.New()
	uc := NewUsecase(s.Users())

	dto, err := uc.Register(context.Background(), RegisterInput{})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if len(dto.UserID) != 32 {
		t.Fatalf("UserID length = %d", len(dto.UserID))
	}
	if dto.ReferrerID != "" {
		t.Fatalf("root user has referrer %q", dto.ReferrerID)
	}
}

func TestRegister_BuildsEdgeChain(t *testing.T) {
	s := memstore.New()
	uc := NewUsecase(s.Users())
	ctx := context.Background()

	// root ← mid ← leaf, then a new user referred by leaf.
	root, err := uc.Register(ctx, RegisterInput{})
	if err != nil {
		t.Fatalf("register root: %v", err)
	}
	mid, err := uc.Register(ctx, RegisterInput{ReferrerID: root.UserID})
	if err != nil {
		t.Fatalf("register mid: %v", err)
	}
	leaf, err := uc.Register(ctx, RegisterInput{ReferrerID: mid.UserID})
	if err != nil {
		t.Fatalf("register leaf: %v", err)
	}
	newest, err := uc.Register(ctx, RegisterInput{ReferrerID: leaf.UserID})
	if err != nil {
		t.Fatalf("register newest: %v", err)
	}

	edges, err := s.Users().ListReferralEdgesByReferred(ctx, newest.UserID)
	if err != nil {
		t.Fatalf("list edges: %v", err)
	}
	if len(edges) != 3 {
		t.Fatalf("edges = %d, want 3", len(edges))
	}
	wantReferrers := []string{leaf.UserID, mid.UserID, root.UserID}
	for i, e := range edges {
		if e.Level != i+1 {
			t.Fatalf("edge %d level = %d", i, e.Level)
		}
		if e.ReferrerID != wantReferrers[i] {
			t.Fatalf("edge level %d referrer = %s, want %s", e.Level, e.ReferrerID, wantReferrers[i])
		}
	}
}

func TestRegister_UnknownReferrerRejected(t *testing.T) {
	s := memstore.New()
	uc := NewUsecase(s.Users())

	_, err := uc.Register(context.Background(), RegisterInput{ReferrerID: "ffffffffffffffffffffffffffffffff"})
	if !errors.Is(err, user.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestRegister_EdgeWriteFailureSurfaces(t *testing.T) {
	boom := errors.New("store down")
	repo := &usermock.Repo{
		GetByUserIDFn: func(ctx context.Context, userID string) (*user.User, error) {
			return &user.User{UserID: userID}, nil
		},
		CreateReferralEdgeFn: func(ctx context.Context, e *user.ReferralEdge) error {
			return boom
		},
	}
	uc := NewUsecase(repo)

	_, err := uc.Register(context.Background(), RegisterInput{ReferrerID: "ffffffffffffffffffffffffffffffff"})
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want wrapped %v", err, boom)
	}
}
