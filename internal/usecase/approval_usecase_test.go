package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"eventpilot/internal/domain/entities"
	"eventpilot/internal/usecase/interfaces"
	mock_interfaces "eventpilot/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func TestApprovalUseCase_Issue(t *testing.T) {
	t.Run("invalid document id", func(t *testing.T) {
		uc := NewApprovalUseCase(ApprovalDeps{Logger: zap.NewNop()})
		_, err := uc.Issue(context.Background(), IssueApprovalInput{DocumentID: "  "})
		if !errors.Is(err, ErrInvalidDocumentID) {
			t.Fatalf("expected ErrInvalidDocumentID, got %v", err)
		}
	})

	t.Run("document without contact", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		docRepo := mock_interfaces.NewMockIDocumentRepository(ctrl)
		uc := NewApprovalUseCase(ApprovalDeps{Documents: docRepo, Logger: zap.NewNop()})

		docRepo.EXPECT().GetByID(gomock.Any(), "doc-1").Return(entities.Document{ID: "doc-1"}, nil)

		_, err := uc.Issue(context.Background(), IssueApprovalInput{DocumentID: "doc-1"})
		if !errors.Is(err, ErrMissingContact) {
			t.Fatalf("expected ErrMissingContact, got %v", err)
		}
	})

	t.Run("contact not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		docRepo := mock_interfaces.NewMockIDocumentRepository(ctrl)
		contactRepo := mock_interfaces.NewMockIContactRepository(ctrl)
		uc := NewApprovalUseCase(ApprovalDeps{Documents: docRepo, Contacts: contactRepo, Logger: zap.NewNop()})

		docRepo.EXPECT().GetByID(gomock.Any(), "doc-1").Return(entities.Document{ID: "doc-1", ContactID: "c-1"}, nil)
		contactRepo.EXPECT().GetByID(gomock.Any(), "c-1").Return(entities.Contact{}, nil)

		_, err := uc.Issue(context.Background(), IssueApprovalInput{DocumentID: "doc-1"})
		if !errors.Is(err, ErrContactNotFound) {
			t.Fatalf("expected ErrContactNotFound, got %v", err)
		}
	})

	t.Run("approved document needs resend confirmation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		docRepo := mock_interfaces.NewMockIDocumentRepository(ctrl)
		contactRepo := mock_interfaces.NewMockIContactRepository(ctrl)
		uc := NewApprovalUseCase(ApprovalDeps{Documents: docRepo, Contacts: contactRepo, Logger: zap.NewNop()})

		docRepo.EXPECT().GetByID(gomock.Any(), "doc-1").Return(entities.Document{
			ID: "doc-1", ContactID: "c-1", Status: entities.DocumentStatusApproved,
		}, nil)
		contactRepo.EXPECT().GetByID(gomock.Any(), "c-1").Return(entities.Contact{ID: "c-1"}, nil)

		_, err := uc.Issue(context.Background(), IssueApprovalInput{DocumentID: "doc-1"})
		if !errors.Is(err, ErrResendNotConfirmed) {
			t.Fatalf("expected ErrResendNotConfirmed, got %v", err)
		}
	})

	t.Run("issue flips draft estimate to pending and sends email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIApprovalRepository(ctrl)
		docRepo := mock_interfaces.NewMockIDocumentRepository(ctrl)
		contactRepo := mock_interfaces.NewMockIContactRepository(ctrl)
		disclosureRepo := mock_interfaces.NewMockIDisclosureRepository(ctrl)
		email := mock_interfaces.NewMockIEmailSender(ctrl)
		uc := NewApprovalUseCase(ApprovalDeps{
			Approvals:   repo,
			Documents:   docRepo,
			Contacts:    contactRepo,
			Disclosures: disclosureRepo,
			Email:       email,
			BaseURL:     "https://app.example.com",
			Logger:      zap.NewNop(),
		})

		docRepo.EXPECT().GetByID(gomock.Any(), "doc-1").Return(entities.Document{
			ID: "doc-1", Kind: entities.DocumentKindEstimate, Number: "EST-000001",
			Status: entities.DocumentStatusDraft, ContactID: "c-1", Total: 125.5,
		}, nil)
		contactRepo.EXPECT().GetByID(gomock.Any(), "c-1").Return(entities.Contact{
			ID: "c-1", Name: "Dana", Email: "dana@example.com",
		}, nil)
		disclosureRepo.EXPECT().ReplaceForDocument(gomock.Any(), "doc-1", gomock.Len(0)).Return(nil)
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.ApprovalRecord{})).DoAndReturn(
			func(_ context.Context, rec entities.ApprovalRecord) (entities.ApprovalRecord, error) {
				if len(rec.Token) != 32 || rec.Status != entities.ApprovalStatusSent {
					t.Fatalf("unexpected record: %+v", rec)
				}
				if rec.DocumentNumber != "EST-000001" || rec.ContactEmail != "dana@example.com" || rec.DocumentTotal != 125.5 {
					t.Fatalf("expected denormalized snapshot, got %+v", rec)
				}
				return rec, nil
			},
		)
		docRepo.EXPECT().UpdateStatus(gomock.Any(), "doc-1", entities.DocumentStatusSentForApproval).Return(entities.Document{ID: "doc-1"}, nil)
		email.EXPECT().Send(gomock.Any(), gomock.AssignableToTypeOf(interfaces.EmailMessage{})).DoAndReturn(
			func(_ context.Context, msg interfaces.EmailMessage) error {
				if msg.To != "dana@example.com" {
					t.Fatalf("unexpected recipient: %s", msg.To)
				}
				if !strings.Contains(msg.TextBody, "/v1/public/approvals/") {
					t.Fatalf("expected approval link in body: %s", msg.TextBody)
				}
				return nil
			},
		)

		rec, err := uc.Issue(context.Background(), IssueApprovalInput{DocumentID: "doc-1"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if rec.Token == "" {
			t.Fatalf("expected token")
		}
	})

	t.Run("email failure does not fail the issue", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIApprovalRepository(ctrl)
		docRepo := mock_interfaces.NewMockIDocumentRepository(ctrl)
		contactRepo := mock_interfaces.NewMockIContactRepository(ctrl)
		disclosureRepo := mock_interfaces.NewMockIDisclosureRepository(ctrl)
		email := mock_interfaces.NewMockIEmailSender(ctrl)
		uc := NewApprovalUseCase(ApprovalDeps{
			Approvals: repo, Documents: docRepo, Contacts: contactRepo,
			Disclosures: disclosureRepo, Email: email, Logger: zap.NewNop(),
		})

		docRepo.EXPECT().GetByID(gomock.Any(), "doc-1").Return(entities.Document{
			ID: "doc-1", Kind: entities.DocumentKindInvoice, ContactID: "c-1",
			Status: entities.DocumentStatusDraft,
		}, nil)
		contactRepo.EXPECT().GetByID(gomock.Any(), "c-1").Return(entities.Contact{ID: "c-1", Email: "dana@example.com"}, nil)
		disclosureRepo.EXPECT().ReplaceForDocument(gomock.Any(), "doc-1", gomock.Len(0)).Return(nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, rec entities.ApprovalRecord) (entities.ApprovalRecord, error) { return rec, nil },
		)
		docRepo.EXPECT().UpdateStatus(gomock.Any(), "doc-1", entities.DocumentStatusPaymentRequested).Return(entities.Document{ID: "doc-1"}, nil)
		email.EXPECT().Send(gomock.Any(), gomock.Any()).Return(errors.New("provider down"))

		if _, err := uc.Issue(context.Background(), IssueApprovalInput{DocumentID: "doc-1"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("inactive disclosures are skipped in the snapshot", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIApprovalRepository(ctrl)
		docRepo := mock_interfaces.NewMockIDocumentRepository(ctrl)
		contactRepo := mock_interfaces.NewMockIContactRepository(ctrl)
		disclosureRepo := mock_interfaces.NewMockIDisclosureRepository(ctrl)
		uc := NewApprovalUseCase(ApprovalDeps{
			Approvals: repo, Documents: docRepo, Contacts: contactRepo,
			Disclosures: disclosureRepo, Logger: zap.NewNop(),
		})

		docRepo.EXPECT().GetByID(gomock.Any(), "doc-1").Return(entities.Document{
			ID: "doc-1", Kind: entities.DocumentKindEstimate, ContactID: "c-1",
			Status: entities.DocumentStatusDraft,
		}, nil)
		contactRepo.EXPECT().GetByID(gomock.Any(), "c-1").Return(entities.Contact{ID: "c-1"}, nil)
		disclosureRepo.EXPECT().GetByID(gomock.Any(), "d-1").Return(entities.Disclosure{
			ID: "d-1", Title: "Damage policy", Content: "Renter is liable.", Active: true,
		}, nil)
		disclosureRepo.EXPECT().GetByID(gomock.Any(), "d-2").Return(entities.Disclosure{
			ID: "d-2", Title: "Old policy", Active: false,
		}, nil)
		disclosureRepo.EXPECT().ReplaceForDocument(gomock.Any(), "doc-1", gomock.Len(1)).Return(nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, rec entities.ApprovalRecord) (entities.ApprovalRecord, error) {
				if len(rec.Disclosures) != 1 || rec.Disclosures[0].DisclosureID != "d-1" {
					t.Fatalf("unexpected disclosures: %+v", rec.Disclosures)
				}
				return rec, nil
			},
		)
		docRepo.EXPECT().UpdateStatus(gomock.Any(), "doc-1", entities.DocumentStatusSentForApproval).Return(entities.Document{ID: "doc-1"}, nil)

		if _, err := uc.Issue(context.Background(), IssueApprovalInput{
			DocumentID: "doc-1", DisclosureIDs: []string{"d-1", "d-2"},
		}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("empty selection clears previously attached disclosures", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIApprovalRepository(ctrl)
		docRepo := mock_interfaces.NewMockIDocumentRepository(ctrl)
		contactRepo := mock_interfaces.NewMockIContactRepository(ctrl)
		disclosureRepo := mock_interfaces.NewMockIDisclosureRepository(ctrl)
		uc := NewApprovalUseCase(ApprovalDeps{
			Approvals: repo, Documents: docRepo, Contacts: contactRepo,
			Disclosures: disclosureRepo, Logger: zap.NewNop(),
		})

		docRepo.EXPECT().GetByID(gomock.Any(), "doc-1").Return(entities.Document{
			ID: "doc-1", Kind: entities.DocumentKindEstimate, ContactID: "c-1",
			Status: entities.DocumentStatusSentForApproval,
		}, nil)
		contactRepo.EXPECT().GetByID(gomock.Any(), "c-1").Return(entities.Contact{ID: "c-1"}, nil)
		disclosureRepo.EXPECT().ReplaceForDocument(gomock.Any(), "doc-1", gomock.Len(0)).Return(nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, rec entities.ApprovalRecord) (entities.ApprovalRecord, error) {
				if len(rec.Disclosures) != 0 {
					t.Fatalf("expected no disclosures, got %+v", rec.Disclosures)
				}
				return rec, nil
			},
		)

		if _, err := uc.Issue(context.Background(), IssueApprovalInput{DocumentID: "doc-1"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestApprovalUseCase_GetByToken(t *testing.T) {
	t.Run("invalid token", func(t *testing.T) {
		uc := NewApprovalUseCase(ApprovalDeps{Logger: zap.NewNop()})
		_, err := uc.GetByToken(context.Background(), "")
		if !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIApprovalRepository(ctrl)
		uc := NewApprovalUseCase(ApprovalDeps{Approvals: repo, Logger: zap.NewNop()})

		repo.EXPECT().GetByToken(gomock.Any(), "tok-1").Return(entities.ApprovalRecord{}, nil)

		_, err := uc.GetByToken(context.Background(), "tok-1")
		if !errors.Is(err, ErrApprovalNotFound) {
			t.Fatalf("expected ErrApprovalNotFound, got %v", err)
		}
	})

	t.Run("cache hit skips the repository", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		cache := mock_interfaces.NewMockISnapshotCache(ctrl)
		uc := NewApprovalUseCase(ApprovalDeps{Cache: cache, Logger: zap.NewNop()})

		cache.EXPECT().GetApproval(gomock.Any(), "tok-1").Return(entities.ApprovalRecord{
			Token: "tok-1", Status: entities.ApprovalStatusApproved,
		}, true, nil)

		rec, err := uc.GetByToken(context.Background(), "tok-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if rec.Token != "tok-1" {
			t.Fatalf("unexpected record: %+v", rec)
		}
	})

	t.Run("terminal record is cached after a miss", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIApprovalRepository(ctrl)
		cache := mock_interfaces.NewMockISnapshotCache(ctrl)
		uc := NewApprovalUseCase(ApprovalDeps{Approvals: repo, Cache: cache, Logger: zap.NewNop()})

		terminal := entities.ApprovalRecord{Token: "tok-1", Status: entities.ApprovalStatusRejected}
		cache.EXPECT().GetApproval(gomock.Any(), "tok-1").Return(entities.ApprovalRecord{}, false, nil)
		repo.EXPECT().GetByToken(gomock.Any(), "tok-1").Return(terminal, nil)
		cache.EXPECT().SetApproval(gomock.Any(), "tok-1", terminal, snapshotCacheTTL).Return(nil)

		if _, err := uc.GetByToken(context.Background(), "tok-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("sent record is never cached", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIApprovalRepository(ctrl)
		cache := mock_interfaces.NewMockISnapshotCache(ctrl)
		uc := NewApprovalUseCase(ApprovalDeps{Approvals: repo, Cache: cache, Logger: zap.NewNop()})

		cache.EXPECT().GetApproval(gomock.Any(), "tok-1").Return(entities.ApprovalRecord{}, false, nil)
		repo.EXPECT().GetByToken(gomock.Any(), "tok-1").Return(entities.ApprovalRecord{
			Token: "tok-1", Status: entities.ApprovalStatusSent,
		}, nil)

		if _, err := uc.GetByToken(context.Background(), "tok-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestApprovalUseCase_Respond(t *testing.T) {
	sent := entities.ApprovalRecord{
		Token:        "tok-1",
		DocumentID:   "doc-1",
		DocumentKind: entities.DocumentKindEstimate,
		Status:       entities.ApprovalStatusSent,
		Disclosures: []entities.DisclosureSnapshot{
			{DisclosureID: "d-1", Title: "Damage policy"},
		},
	}

	t.Run("already responded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIApprovalRepository(ctrl)
		uc := NewApprovalUseCase(ApprovalDeps{Approvals: repo, Logger: zap.NewNop()})

		repo.EXPECT().GetByToken(gomock.Any(), "tok-1").Return(entities.ApprovalRecord{
			Token: "tok-1", Status: entities.ApprovalStatusApproved,
		}, nil)

		_, err := uc.Respond(context.Background(), RespondInput{Token: "tok-1", Status: entities.ApprovalStatusApproved})
		if !errors.Is(err, ErrAlreadyResponded) {
			t.Fatalf("expected ErrAlreadyResponded, got %v", err)
		}
	})

	t.Run("rejection requires a reason", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIApprovalRepository(ctrl)
		uc := NewApprovalUseCase(ApprovalDeps{Approvals: repo, Logger: zap.NewNop()})

		repo.EXPECT().GetByToken(gomock.Any(), "tok-1").Return(sent, nil)

		_, err := uc.Respond(context.Background(), RespondInput{
			Token: "tok-1", Status: entities.ApprovalStatusRejected, ContactResponse: "   ",
		})
		if !errors.Is(err, ErrMissingReason) {
			t.Fatalf("expected ErrMissingReason, got %v", err)
		}
	})

	t.Run("approval requires typed name and consent", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIApprovalRepository(ctrl)
		uc := NewApprovalUseCase(ApprovalDeps{Approvals: repo, Logger: zap.NewNop()})

		repo.EXPECT().GetByToken(gomock.Any(), "tok-1").Return(sent, nil).Times(3)

		cases := []*entities.SignaturePayload{
			nil,
			{TypedName: "  ", Consent: true},
			{TypedName: "Dana", Consent: false},
		}
		for _, sig := range cases {
			_, err := uc.Respond(context.Background(), RespondInput{
				Token: "tok-1", Status: entities.ApprovalStatusApproved, Signature: sig,
				AcknowledgedIDs: []string{"d-1"},
			})
			if !errors.Is(err, ErrInvalidSignature) {
				t.Fatalf("expected ErrInvalidSignature for %+v, got %v", sig, err)
			}
		}
	})

	t.Run("all disclosures must be acknowledged", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIApprovalRepository(ctrl)
		uc := NewApprovalUseCase(ApprovalDeps{Approvals: repo, Logger: zap.NewNop()})

		repo.EXPECT().GetByToken(gomock.Any(), "tok-1").Return(sent, nil)

		_, err := uc.Respond(context.Background(), RespondInput{
			Token:     "tok-1",
			Status:    entities.ApprovalStatusApproved,
			Signature: &entities.SignaturePayload{TypedName: "Dana", Consent: true},
		})
		if !errors.Is(err, ErrDisclosuresNotAcked) {
			t.Fatalf("expected ErrDisclosuresNotAcked, got %v", err)
		}
	})

	t.Run("invalid decision", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIApprovalRepository(ctrl)
		uc := NewApprovalUseCase(ApprovalDeps{Approvals: repo, Logger: zap.NewNop()})

		repo.EXPECT().GetByToken(gomock.Any(), "tok-1").Return(sent, nil)

		_, err := uc.Respond(context.Background(), RespondInput{Token: "tok-1", Status: "maybe"})
		if !errors.Is(err, ErrInvalidDecision) {
			t.Fatalf("expected ErrInvalidDecision, got %v", err)
		}
	})

	t.Run("concurrent loser gets already responded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIApprovalRepository(ctrl)
		uc := NewApprovalUseCase(ApprovalDeps{Approvals: repo, Logger: zap.NewNop()})

		repo.EXPECT().GetByToken(gomock.Any(), "tok-1").Return(sent, nil)
		// The conditional update lost: zero record, nil error.
		repo.EXPECT().Respond(gomock.Any(), "tok-1", gomock.Any()).Return(entities.ApprovalRecord{}, nil)

		_, err := uc.Respond(context.Background(), RespondInput{
			Token: "tok-1", Status: entities.ApprovalStatusRejected, ContactResponse: "too expensive",
		})
		if !errors.Is(err, ErrAlreadyResponded) {
			t.Fatalf("expected ErrAlreadyResponded, got %v", err)
		}
	})

	t.Run("approval flips document and marks disclosures", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIApprovalRepository(ctrl)
		docRepo := mock_interfaces.NewMockIDocumentRepository(ctrl)
		disclosureRepo := mock_interfaces.NewMockIDisclosureRepository(ctrl)
		cache := mock_interfaces.NewMockISnapshotCache(ctrl)
		uc := NewApprovalUseCase(ApprovalDeps{
			Approvals: repo, Documents: docRepo, Disclosures: disclosureRepo,
			Cache: cache, Logger: zap.NewNop(),
		})

		repo.EXPECT().GetByToken(gomock.Any(), "tok-1").Return(sent, nil)
		repo.EXPECT().Respond(gomock.Any(), "tok-1", gomock.AssignableToTypeOf(entities.ApprovalDecision{})).DoAndReturn(
			func(_ context.Context, _ string, d entities.ApprovalDecision) (entities.ApprovalRecord, error) {
				if d.Status != entities.ApprovalStatusApproved || d.Signature == nil {
					t.Fatalf("unexpected decision: %+v", d)
				}
				if d.Signature.TypedName != "Dana Q" || !d.Signature.Consent {
					t.Fatalf("unexpected signature: %+v", d.Signature)
				}
				if d.Signature.IPAddress != "203.0.113.9" || d.Signature.UserAgent != "test-agent" {
					t.Fatalf("expected request metadata on signature, got %+v", d.Signature)
				}
				out := sent
				out.Status = entities.ApprovalStatusApproved
				out.Signature = d.Signature
				return out, nil
			},
		)
		docRepo.EXPECT().UpdateStatus(gomock.Any(), "doc-1", entities.DocumentStatusApproved).Return(entities.Document{ID: "doc-1"}, nil)
		disclosureRepo.EXPECT().MarkAcknowledged(gomock.Any(), "doc-1", []string{"d-1"}).Return(nil)
		cache.EXPECT().InvalidateApproval(gomock.Any(), "tok-1").Return(nil)

		updated, err := uc.Respond(context.Background(), RespondInput{
			Token:           "tok-1",
			Status:          entities.ApprovalStatusApproved,
			Signature:       &entities.SignaturePayload{TypedName: " Dana Q ", Consent: true},
			AcknowledgedIDs: []string{"d-1"},
			IPAddress:       "203.0.113.9",
			UserAgent:       "test-agent",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.Status != entities.ApprovalStatusApproved {
			t.Fatalf("unexpected status: %s", updated.Status)
		}
	})

	t.Run("rejection flips document to rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIApprovalRepository(ctrl)
		docRepo := mock_interfaces.NewMockIDocumentRepository(ctrl)
		uc := NewApprovalUseCase(ApprovalDeps{Approvals: repo, Documents: docRepo, Logger: zap.NewNop()})

		repo.EXPECT().GetByToken(gomock.Any(), "tok-1").Return(sent, nil)
		repo.EXPECT().Respond(gomock.Any(), "tok-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, d entities.ApprovalDecision) (entities.ApprovalRecord, error) {
				if d.Status != entities.ApprovalStatusRejected || d.ContactResponse != "venue changed" {
					t.Fatalf("unexpected decision: %+v", d)
				}
				out := sent
				out.Status = entities.ApprovalStatusRejected
				return out, nil
			},
		)
		docRepo.EXPECT().UpdateStatus(gomock.Any(), "doc-1", entities.DocumentStatusRejected).Return(entities.Document{ID: "doc-1"}, nil)

		if _, err := uc.Respond(context.Background(), RespondInput{
			Token: "tok-1", Status: entities.ApprovalStatusRejected, ContactResponse: " venue changed ",
		}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
