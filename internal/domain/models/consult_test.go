package models

import (
	"errors"
	"testing"
	"time"
)

func TestTransitionConsult(t *testing.T) {
	now := time.Now()

	for _, status := range []ConsultStatus{ConsultPending, ConsultAccepted, ConsultRejected} {
		tr, err := TransitionConsult(status, "admin@example.com", now)
		if err != nil {
			t.Fatalf("TransitionConsult(%v) error = %v", status, err)
		}
		if tr.Status != status {
			t.Errorf("Status = %v, want %v", tr.Status, status)
		}
		if tr.AppendEntry != nil {
			t.Errorf("TransitionConsult(%v) should not append history", status)
		}
	}
}

func TestTransitionConsult_Contacted(t *testing.T) {
	now := time.Now()

	tr, err := TransitionConsult(ConsultContacted, "admin@example.com", now)
	if err != nil {
		t.Fatalf("TransitionConsult() error = %v", err)
	}
	if tr.AppendEntry == nil {
		t.Fatal("Contacted transition must append a history entry")
	}
	if tr.AppendEntry.ContactedBy != "admin@example.com" {
		t.Errorf("ContactedBy = %v, want admin@example.com", tr.AppendEntry.ContactedBy)
	}
	if !tr.AppendEntry.ContactedAt.Equal(now) {
		t.Errorf("ContactedAt = %v, want %v", tr.AppendEntry.ContactedAt, now)
	}
}

func TestTransitionConsult_InvalidStatus(t *testing.T) {
	if _, err := TransitionConsult("Archived", "x", time.Now()); !errors.Is(err, ErrInvalidConsultStatus) {
		t.Errorf("TransitionConsult() error = %v, want ErrInvalidConsultStatus", err)
	}
}

func TestIsValidBlogStatus(t *testing.T) {
	if !IsValidBlogStatus(BlogDraft) || !IsValidBlogStatus(BlogPublished) {
		t.Error("draft and published should be valid")
	}
	if IsValidBlogStatus("archived") || IsValidBlogStatus("") {
		t.Error("unknown statuses should be invalid")
	}
}

func TestIsValidClientStatus(t *testing.T) {
	for _, s := range []ClientStatus{ClientNew, ClientUnderRecovery, ClientRecovered} {
		if !IsValidClientStatus(s) {
			t.Errorf("IsValidClientStatus(%v) = false, want true", s)
		}
	}
	// Enum values are case-sensitive
	if IsValidClientStatus("new") || IsValidClientStatus("recovered") {
		t.Error("lowercase variants should be invalid")
	}
}

func TestIsValidVolunteerStatus(t *testing.T) {
	for _, s := range []VolunteerStatus{VolunteerPending, VolunteerApproved, VolunteerRejected} {
		if !IsValidVolunteerStatus(s) {
			t.Errorf("IsValidVolunteerStatus(%v) = false, want true", s)
		}
	}
	if IsValidVolunteerStatus("Pending") {
		t.Error("capitalized variant should be invalid")
	}
}

func TestIsValidRole(t *testing.T) {
	if !IsValidRole(RoleAdmin) || !IsValidRole(RoleSuperAdmin) {
		t.Error("admin and superadmin should be valid")
	}
	if IsValidRole("root") {
		t.Error("unknown role should be invalid")
	}
}

func TestIsValidBlogCategory(t *testing.T) {
	if !IsValidBlogCategory("recovery") {
		t.Error("recovery should be a valid category")
	}
	if IsValidBlogCategory("sports") {
		t.Error("sports should be invalid")
	}
}
