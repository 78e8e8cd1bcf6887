package config

import "testing"

func TestParsePreset(t *testing.T) {
	tests := []struct {
		in      string
		want    DifficultyPreset
		wantErr bool
	}{
		{"", DifficultyNormal, false},
		{"easy", DifficultyEasy, false},
		{"normal", DifficultyNormal, false},
		{"hard", DifficultyHard, false},
		{"fixed", DifficultyFixed, false},
		{"insane", "", true},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParsePreset(tc.in)
			if (err != nil) != tc.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tc.wantErr)
			}
			if got != tc.want {
				t.Errorf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestApplyLevelPreset(t *testing.T) {
	tests := []struct {
		preset    DifficultyPreset
		wantStart int
		wantFixed bool
	}{
		{DifficultyEasy, 1, false},
		{DifficultyNormal, 1, false},
		{DifficultyHard, 3, false},
		{DifficultyFixed, 1, true},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultSnakeConfig()
			ApplySnakePreset(&cfg, tc.preset)

			if cfg.Level.StartLevel != tc.wantStart {
				t.Errorf("StartLevel = %d, want %d", cfg.Level.StartLevel, tc.wantStart)
			}
			if cfg.Level.Fixed != tc.wantFixed {
				t.Errorf("Fixed = %v, want %v", cfg.Level.Fixed, tc.wantFixed)
			}
			if IsFixedPreset(tc.preset) != tc.wantFixed {
				t.Errorf("IsFixedPreset(%s) mismatch", tc.preset)
			}
		})
	}
}

func TestApplyBreakoutPreset(t *testing.T) {
	base := DefaultBreakoutConfig()

	easy := DefaultBreakoutConfig()
	ApplyBreakoutPreset(&easy, DifficultyEasy)
	if easy.Lives != 5 || easy.Paddle.Width != base.Paddle.Width+2 {
		t.Errorf("easy: lives %d paddle %d", easy.Lives, easy.Paddle.Width)
	}

	hard := DefaultBreakoutConfig()
	ApplyBreakoutPreset(&hard, DifficultyHard)
	if hard.Lives != 2 || hard.Paddle.Width != base.Paddle.Width-2 {
		t.Errorf("hard: lives %d paddle %d", hard.Lives, hard.Paddle.Width)
	}
	if hard.Level.StartLevel != 3 {
		t.Errorf("hard: start level %d", hard.Level.StartLevel)
	}
	if err := hard.Validate(); err != nil {
		t.Errorf("hard preset produced invalid config: %v", err)
	}
}

func TestApplyPongPreset(t *testing.T) {
	base := DefaultPongConfig()

	hard := DefaultPongConfig()
	ApplyPongPreset(&hard, DifficultyHard)
	if hard.CPU.Speed <= base.CPU.Speed {
		t.Errorf("hard CPU speed %d not above %d", hard.CPU.Speed, base.CPU.Speed)
	}

	easy := DefaultPongConfig()
	ApplyPongPreset(&easy, DifficultyEasy)
	if easy.CPU.Speed >= base.CPU.Speed {
		t.Errorf("easy CPU speed %d not below %d", easy.CPU.Speed, base.CPU.Speed)
	}
}
