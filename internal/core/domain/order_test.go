package domain

import "testing"

func TestOrderStatus_CanTransitionTo(t *testing.T) {
	cases := []struct {
		from, to OrderStatus
		want     bool
	}{
		{StatusPending, StatusApproved, true},
		{StatusPending, StatusRejected, true},
		{StatusPending, StatusCompleted, true},
		{StatusApproved, StatusCompleted, true},
		{StatusApproved, StatusPending, false},
		{StatusApproved, StatusRejected, false},
		{StatusCompleted, StatusPending, false},
		{StatusCompleted, StatusApproved, false},
		{StatusCompleted, StatusRejected, false},
		{StatusRejected, StatusPending, false},
		{StatusRejected, StatusApproved, false},
		{StatusRejected, StatusCompleted, false},
	}
	for _, tc := range cases {
		if got := tc.from.CanTransitionTo(tc.to); got != tc.want {
			t.Errorf("%s -> %s: got %v, want %v", tc.from, tc.to, got, tc.want)
		}
	}
}

func TestValidStatus(t *testing.T) {
	for _, s := range []OrderStatus{StatusPending, StatusApproved, StatusCompleted, StatusRejected} {
		if !ValidStatus(s) {
			t.Errorf("expected %s to be valid", s)
		}
	}
	if ValidStatus("shipped") {
		t.Errorf("expected unknown status to be invalid")
	}
}

func TestEmailInDomain(t *testing.T) {
	const suffix = "@christian-constantin.ch"

	if !EmailInDomain("jean.dupont@christian-constantin.ch", suffix) {
		t.Errorf("expected organisation email to match")
	}
	if !EmailInDomain("Jean.Dupont@Christian-Constantin.CH", suffix) {
		t.Errorf("expected match to be case-insensitive")
	}
	if EmailInDomain("jean.dupont@gmail.com", suffix) {
		t.Errorf("expected external email to be rejected")
	}
	if EmailInDomain("", suffix) {
		t.Errorf("expected empty email to be rejected")
	}
}

func TestSettings_Masked(t *testing.T) {
	s := Settings{Mail: MailSettings{Pass: "real-password"}}
	masked := s.Masked()

	if masked.Mail.Pass != MaskedPassword {
		t.Errorf("expected mask, got %q", masked.Mail.Pass)
	}
	if s.Mail.Pass != "real-password" {
		t.Errorf("Masked must not mutate the original")
	}

	empty := Settings{}.Masked()
	if empty.Mail.Pass != "" {
		t.Errorf("unset password must stay empty, got %q", empty.Mail.Pass)
	}
}
