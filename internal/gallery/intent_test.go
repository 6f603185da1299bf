package gallery

import (
	"reflect"
	"testing"
	"time"

	"github.com/ytget/cloudshot/internal/model"
)

func TestIntentFor(t *testing.T) {
	record := model.NewCaptureRecord(time.Now(), "a.png", model.StorageLocal, "/captures")

	tests := []struct {
		action   Action
		expected IntentKind
	}{
		{ActionReveal, IntentReveal},
		{ActionCopyPath, IntentCopyPath},
		{ActionOpen, IntentOpen},
	}

	for _, test := range tests {
		intent := IntentFor(test.action, record)
		if intent.Kind != test.expected {
			t.Errorf("IntentFor(%s).Kind = %s, expected %s", test.action, intent.Kind, test.expected)
		}
		if intent.Key != "a.png" || intent.Path != record.SourcePath {
			t.Errorf("IntentFor(%s) = %+v", test.action, intent)
		}
	}
}

func TestQueue_Drain(t *testing.T) {
	var q Queue
	q.Add(QuitIntent())
	q.Add(Intent{Kind: IntentOpen, Key: "a"})

	if q.Len() != 2 {
		t.Fatalf("Len() = %d, expected 2", q.Len())
	}

	got := q.Drain()
	expected := []Intent{{Kind: IntentQuit}, {Kind: IntentOpen, Key: "a"}}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("Drain() = %+v, expected %+v", got, expected)
	}
	if q.Len() != 0 || q.Drain() != nil {
		t.Error("Drain() should empty the queue")
	}
}

func TestAction_IsIcon(t *testing.T) {
	for _, action := range OverlayActions() {
		if action.IsIcon() != (action == ActionReveal) {
			t.Errorf("%s.IsIcon() = %v", action, action.IsIcon())
		}
	}
}
