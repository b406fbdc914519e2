package ui

import (
	"strings"
	"testing"

	"github.com/soundtrack-app/soundtrack/domain"
)

func TestFormatDuration(t *testing.T) {
	cases := []struct {
		seconds int
		want    string
	}{
		{0, "00:00"},
		{59, "00:59"},
		{60, "01:00"},
		{192, "03:12"},
		{3600, "60:00"},
	}
	for _, tc := range cases {
		if got := FormatDuration(tc.seconds); got != tc.want {
			t.Errorf("FormatDuration(%d) = %q, want %q", tc.seconds, got, tc.want)
		}
	}
}

func TestCreateProgressBarClamps(t *testing.T) {
	if got := CreateProgressBar(1.5, 10); !strings.Contains(got, "100.0%") {
		t.Errorf("overshoot not clamped: %q", got)
	}
	if got := CreateProgressBar(-0.5, 10); !strings.Contains(got, "0.0%") {
		t.Errorf("undershoot not clamped: %q", got)
	}
	half := CreateProgressBar(0.5, 10)
	if strings.Count(half, "▓") != 5 || strings.Count(half, "░") != 5 {
		t.Errorf("half bar wrong: %q", half)
	}
}

func TestFormatSongInfoOptionalFields(t *testing.T) {
	bitRate := 320
	suffix := "flac"
	track := 7
	full := domain.Song{
		Title: "Gyroscope", Artist: "Boards", Album: "Geogaddi",
		Duration: 320, Size: 9 << 20, Suffix: &suffix, BitRate: &bitRate, Track: &track,
	}
	text := FormatSongInfo(full, 2, "[lightgreen]Gyroscope", "")
	for _, frag := range []string{"320 kbps", "flac", "#7", "Track 3:"} {
		if !strings.Contains(text, frag) {
			t.Errorf("missing %q in %q", frag, text)
		}
	}

	sparse := domain.Song{Title: "Stray", Artist: "x", Album: "y", Duration: 60}
	text = FormatSongInfo(sparse, -1, "Stray", "")
	if !strings.Contains(text, "unknown") || !strings.Contains(text, "N/A") {
		t.Errorf("absent fields must fall back to placeholders: %q", text)
	}
	if !strings.Contains(text, "Now playing:") {
		t.Errorf("index -1 must not render a track number: %q", text)
	}
}

func TestFormatAlbumLine(t *testing.T) {
	year := 2002
	album := domain.Album{Name: "Geogaddi", Artist: "Boards", Year: &year}
	if got := FormatAlbumLine(album); got != "Geogaddi (2002) - Boards" {
		t.Errorf("FormatAlbumLine = %q", got)
	}
	album.Year = nil
	if got := FormatAlbumLine(album); got != "Geogaddi - Boards" {
		t.Errorf("FormatAlbumLine without year = %q", got)
	}
}
