package mail

import "testing"

func TestConfigEnabled(t *testing.T) {
	testCases := []struct {
		name     string
		config   Config
		expected bool
	}{
		{"empty", Config{}, false},
		{"host only", Config{Host: "smtp.example.com"}, false},
		{"from only", Config{FromAddress: "trip@example.com"}, false},
		{"host and from", Config{Host: "smtp.example.com", FromAddress: "trip@example.com"}, true},
	}

	for _, testCase := range testCases {
		if got := testCase.config.Enabled(); got != testCase.expected {
			t.Fatalf("%s: Enabled() = %v, expected %v", testCase.name, got, testCase.expected)
		}
	}
}

func TestSendSkipsWhenDisabled(t *testing.T) {
	mailer := New(Config{})

	result := mailer.Send("golfer@example.com", "Tee times", "<p>posted</p>")
	if !result.Skipped {
		t.Fatal("expected disabled mailer to skip")
	}
	if result.Delivered || result.Err != nil {
		t.Fatalf("expected clean skip, got %+v", result)
	}
}

func TestSendSkipsEmptyRecipient(t *testing.T) {
	mailer := New(Config{Host: "smtp.example.com", FromAddress: "trip@example.com"})

	result := mailer.Send("", "Tee times", "<p>posted</p>")
	if !result.Skipped {
		t.Fatal("expected empty recipient to skip")
	}
}
