package screens

import (
	"context"
	"errors"
	"testing"

	"github.com/gdg-garage/hotel-admin/internal/models"
)

func validGuestForm() GuestForm {
	return GuestForm{
		Name:          "María José",
		FirstSurname:  "Núñez",
		SecondSurname: "Ávila",
		Email:         "mjose@example.com",
		Phone:         "5598765432",
		DocumentType:  models.DocumentPasaporte,
		Nationality:   "ESPAÑA",
	}
}

func TestNormalizeNationality(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"MEXICO", "MEXICO"},
		{"ESTADOS UNIDOS", "ESTADOS_UNIDOS"},
		{"reino unido", "REINO_UNIDO"},
		{"Estados Unidos", "ESTADOS_UNIDOS"},
		{"Japón", "JAPON"},
		{"japon", "JAPON"},
		{"España", "ESPAÑA"},
		{"espana", "ESPAÑA"},
		{"Canadá", "CANADA"},
		{"Otro", "OTRA"},
		{"Narnia", "Narnia"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := NormalizeNationality(tt.in); got != tt.want {
			t.Errorf("NormalizeNationality(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestGuestFormValidation(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		if err := validateForm(validGuestForm()); err != nil {
			t.Errorf("expected valid form, got %v", err)
		}
	})

	t.Run("Fields", func(t *testing.T) {
		form := validGuestForm()
		form.Name = "   "
		form.FirstSurname = "O'Brien"
		form.Email = "not-an-email"
		form.Phone = "55123"
		form.Nationality = "Narnia"

		err := validateForm(form)
		var fe *FormError
		if !errors.As(err, &fe) {
			t.Fatalf("expected *FormError, got %v", err)
		}
		for _, field := range []string{"nombre", "apellidoPaterno", "email", "telefono", "nacionalidad"} {
			if fe.Fields[field] == "" {
				t.Errorf("expected error on %s, got %v", field, fe.Fields)
			}
		}
		if _, ok := fe.Fields["apellidoMaterno"]; ok {
			t.Errorf("did not expect error on apellidoMaterno")
		}
	})

	t.Run("PhoneDigits", func(t *testing.T) {
		form := validGuestForm()
		form.Phone = "55-1234-56"
		err := validateForm(form)
		var fe *FormError
		if !errors.As(err, &fe) || fe.Fields["telefono"] == "" {
			t.Errorf("expected telefono error, got %v", err)
		}
	})
}

func TestGuestScreenEditNormalizesNationality(t *testing.T) {
	gw := &fakeGuests{guests: []models.Guest{{ID: 3, GuestFields: models.GuestFields{
		Name: "John", FirstSurname: "Smith", SecondSurname: "Doe", Email: "john@example.com",
		Phone: "5511111111", DocumentType: models.DocumentPasaporte, Nationality: "Estados Unidos",
	}}}}
	s := NewGuestScreen(gw, testDeps(true, &scriptedConfirmer{}, &recordingNotifier{}))
	s.Activate(context.Background())

	if err := s.OpenEdit(3); err != nil {
		t.Fatalf("OpenEdit: %v", err)
	}
	if got := s.Form().Nationality; got != "ESTADOS_UNIDOS" {
		t.Errorf("expected ESTADOS_UNIDOS, got %q", got)
	}
	if s.ModalTitle() != "Editando Huésped: John" {
		t.Errorf("unexpected title %q", s.ModalTitle())
	}
}

func TestGuestScreenHandoff(t *testing.T) {
	ctx := context.Background()

	t.Run("Accepted", func(t *testing.T) {
		gw := &fakeGuests{nextID: 9}
		confirmer := &scriptedConfirmer{answers: []bool{true}}
		s := NewGuestScreen(gw, testDeps(false, confirmer, &recordingNotifier{}))

		var handedOff uint
		s.OnReserve(func(_ context.Context, id uint) error {
			handedOff = id
			return nil
		})

		s.OpenCreate()
		s.SetForm(validGuestForm())
		guest, err := s.Submit(ctx)
		if err != nil {
			t.Fatalf("Submit: %v", err)
		}
		if guest.ID != 10 || handedOff != 10 {
			t.Errorf("expected hand-off with guest 10, got guest %d hand-off %d", guest.ID, handedOff)
		}
		if len(s.Guests()) != 1 {
			t.Errorf("expected guest appended")
		}
	})

	t.Run("Declined", func(t *testing.T) {
		gw := &fakeGuests{}
		s := NewGuestScreen(gw, testDeps(false, &scriptedConfirmer{answers: []bool{false}}, &recordingNotifier{}))
		called := false
		s.OnReserve(func(context.Context, uint) error { called = true; return nil })

		s.OpenCreate()
		s.SetForm(validGuestForm())
		if _, err := s.Submit(ctx); err != nil {
			t.Fatalf("Submit: %v", err)
		}
		if called {
			t.Error("hand-off should not run when declined")
		}
	})

	t.Run("NoPromptOnUpdate", func(t *testing.T) {
		gw := &fakeGuests{guests: []models.Guest{{ID: 1, GuestFields: validGuestForm().Request()}}}
		confirmer := &scriptedConfirmer{answers: []bool{true}}
		s := NewGuestScreen(gw, testDeps(true, confirmer, &recordingNotifier{}))
		s.OnReserve(func(context.Context, uint) error { t.Error("unexpected hand-off"); return nil })
		s.Activate(ctx)

		s.OpenEdit(1)
		form := s.Form()
		form.Phone = "5500000000"
		s.SetForm(form)
		updated, err := s.Submit(ctx)
		if err != nil {
			t.Fatalf("Submit: %v", err)
		}
		if s.Guests()[0] != updated {
			t.Errorf("expected entry replaced by response")
		}
		if len(confirmer.prompts) != 0 {
			t.Errorf("expected no prompt on update, got %d", len(confirmer.prompts))
		}
	})
}

func TestGuestScreenDelete(t *testing.T) {
	gw := &fakeGuests{guests: []models.Guest{{ID: 1}, {ID: 2}}}
	s := NewGuestScreen(gw, testDeps(true, &scriptedConfirmer{answers: []bool{true}}, &recordingNotifier{}))
	s.Activate(context.Background())

	if ok, err := s.Delete(context.Background(), 1); err != nil || !ok {
		t.Fatalf("Delete: %v %v", ok, err)
	}
	if guests := s.Guests(); len(guests) != 1 || guests[0].ID != 2 {
		t.Errorf("expected guest 1 removed, got %+v", guests)
	}
}
