package homework

import (
	"errors"
	"testing"

	"homework-bot/internal/practicum"
)

func TestParseStatus(t *testing.T) {
	tests := []struct {
		name    string
		hw      practicum.Homework
		want    string
		wantErr error
	}{
		{
			name: "approved",
			hw:   practicum.Homework{"homework_name": "diploma", "status": "approved"},
			want: `Изменился статус проверки работы "diploma".Работа проверена: ревьюеру всё понравилось. Ура!`,
		},
		{
			name: "reviewing",
			hw:   practicum.Homework{"homework_name": "hw05", "status": "reviewing", "lesson_name": "Bots"},
			want: `Изменился статус проверки работы "hw05".Работа взята на проверку ревьюером.`,
		},
		{
			name: "rejected",
			hw:   practicum.Homework{"homework_name": "hw05", "status": "rejected"},
			want: `Изменился статус проверки работы "hw05".Работа проверена: у ревьюера есть замечания.`,
		},
		{
			name:    "unknown status",
			hw:      practicum.Homework{"homework_name": "hw05", "status": "lost"},
			wantErr: ErrUnknownStatus,
		},
		{
			name:    "no name",
			hw:      practicum.Homework{"status": "approved"},
			wantErr: practicum.ErrMissingField,
		},
		{
			name:    "no status",
			hw:      practicum.Homework{"homework_name": "hw05"},
			wantErr: practicum.ErrMissingField,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseStatus(tt.hw)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %q\nwant %q", got, tt.want)
			}
		})
	}
}

func TestParseStatusDeterministic(t *testing.T) {
	hw := practicum.Homework{"homework_name": "diploma", "status": "approved"}
	first, err := ParseStatus(hw)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 10; i++ {
		again, _ := ParseStatus(practicum.Homework{"status": "approved", "homework_name": "diploma", "id": i})
		if again != first {
			t.Fatalf("message changed: %q != %q", again, first)
		}
	}
}

func TestLatestMessage(t *testing.T) {
	msg, err := LatestMessage(nil)
	if err != nil || msg != NotReviewedMessage {
		t.Fatalf("empty list: %q, %v", msg, err)
	}

	msg, err = LatestMessage([]practicum.Homework{
		{"homework_name": "new", "status": "reviewing"},
		{"homework_name": "old", "status": "approved"},
	})
	if err != nil {
		t.Fatal(err)
	}
	if msg != `Изменился статус проверки работы "new".Работа взята на проверку ревьюером.` {
		t.Errorf("expected the first homework to win, got %q", msg)
	}
}

func TestStatuses(t *testing.T) {
	got := Statuses()
	want := []string{"approved", "rejected", "reviewing"}
	if len(got) != len(want) {
		t.Fatalf("got %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Statuses()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
