package ui

import (
	"fmt"

	"github.com/soundtrack-app/soundtrack/domain"
)

// FormatDuration converts seconds to MM:SS format
func FormatDuration(seconds int) string {
	minutes := seconds / 60
	seconds = seconds % 60
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}

// FormatSongInfo creates the now-playing panel text for a song
func FormatSongInfo(song domain.Song, index int, status, progressBar string) string {
	formatStr := "unknown"
	if song.Suffix != nil {
		formatStr = *song.Suffix
	}

	techInfo := "N/A"
	if song.BitRate != nil {
		techInfo = fmt.Sprintf("%d kbps", *song.BitRate)
	}

	trackNumStr := ""
	if song.Track != nil {
		trackNumStr = fmt.Sprintf("#%d", *song.Track)
	}

	position := ""
	if index >= 0 {
		position = fmt.Sprintf("Track %d:", index+1)
	} else {
		position = "Now playing:"
	}

	return fmt.Sprintf(`
[white]%s
%s

[darkgray][duration] %s [darkgray][format] %s [darkgray][size] %.1f MB
[darkgray][quality] %s

[gray]Artist: [white]%s
[gray]Album:  [white]%s %s
%s

[darkgray] SPACE (pause)
[darkgray] n/p (next/prev)
[darkgray] ESC (back)`,
		position, status, FormatDuration(song.Duration), formatStr,
		float64(song.Size)/1024/1024, techInfo,
		song.Artist, song.Album, trackNumStr, progressBar)
}

// FormatAlbumLine renders one album row for list views
func FormatAlbumLine(album domain.Album) string {
	year := ""
	if album.Year != nil {
		year = fmt.Sprintf(" (%d)", *album.Year)
	}
	return fmt.Sprintf("%s%s - %s", album.Name, year, album.Artist)
}

// CreateProgressBar creates a visual progress bar
func CreateProgressBar(progress float64, width int) string {
	if progress < 0 {
		progress = 0
	} else if progress > 1 {
		progress = 1
	}
	filledWidth := int(progress * float64(width))
	var bar string
	for i := 0; i < width; i++ {
		if i < filledWidth {
			bar += "[lightgreen]▓"
		} else {
			bar += "[darkgray]░"
		}
	}
	return bar + fmt.Sprintf("[white] %.1f%%", progress*100)
}
