package entities

import "testing"

func TestDocumentKind_FormatNumber(t *testing.T) {
	if got := DocumentKindEstimate.FormatNumber(1); got != "EST-000001" {
		t.Fatalf("unexpected number: %q", got)
	}
	if got := DocumentKindInvoice.FormatNumber(42); got != "INV-000042" {
		t.Fatalf("unexpected number: %q", got)
	}
}

func TestDocumentKind_PendingStatus(t *testing.T) {
	if got := DocumentKindEstimate.PendingStatus(); got != DocumentStatusSentForApproval {
		t.Fatalf("unexpected status: %q", got)
	}
	if got := DocumentKindInvoice.PendingStatus(); got != DocumentStatusPaymentRequested {
		t.Fatalf("unexpected status: %q", got)
	}
}

func TestDocumentKind_ValidStatus(t *testing.T) {
	cases := []struct {
		kind   DocumentKind
		status DocumentStatus
		valid  bool
	}{
		{DocumentKindEstimate, DocumentStatusSentForApproval, true},
		{DocumentKindEstimate, DocumentStatusPaid, false},
		{DocumentKindEstimate, DocumentStatusCanceled, false},
		{DocumentKindInvoice, DocumentStatusPaymentRequested, true},
		{DocumentKindInvoice, DocumentStatusSentForApproval, false},
		{DocumentKindInvoice, DocumentStatusPaid, true},
		{DocumentKindEstimate, DocumentStatusApproved, true},
		{DocumentKindInvoice, DocumentStatus("bogus"), false},
	}
	for _, tc := range cases {
		if got := tc.kind.ValidStatus(tc.status); got != tc.valid {
			t.Fatalf("%s.ValidStatus(%s) = %v, expected %v", tc.kind, tc.status, got, tc.valid)
		}
	}
}

func TestDocument_IsTerminal(t *testing.T) {
	terminal := []DocumentStatus{
		DocumentStatusApproved, DocumentStatusRejected, DocumentStatusExpired,
		DocumentStatusPaid, DocumentStatusCanceled,
	}
	for _, s := range terminal {
		if !(Document{Status: s}).IsTerminal() {
			t.Fatalf("expected %s to be terminal", s)
		}
	}
	for _, s := range []DocumentStatus{DocumentStatusDraft, DocumentStatusSentForApproval, DocumentStatusPaymentRequested} {
		if (Document{Status: s}).IsTerminal() {
			t.Fatalf("expected %s not to be terminal", s)
		}
	}
}

func TestRoundCents(t *testing.T) {
	cases := []struct {
		in       float64
		expected float64
	}{
		{0.875, 0.88},
		{0.874, 0.87},
		{25.0, 25.0},
		{5.499, 5.5},
	}
	for _, tc := range cases {
		if got := RoundCents(tc.in); got != tc.expected {
			t.Fatalf("RoundCents(%v) = %v, expected %v", tc.in, got, tc.expected)
		}
	}
}
