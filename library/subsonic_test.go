package library

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/soundtrack-app/soundtrack/subsonic"
)

func testLibrary(t *testing.T, handler http.HandlerFunc) *SubsonicLibrary {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewSubsonicLibrary(subsonic.Init(srv.URL, "alice", "pw", "soundtrack", "1.16.1", 5*time.Second))
}

func TestArtistsKeepsIndexBuckets(t *testing.T) {
	lib := testLibrary(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"subsonic-response":{"status":"ok","version":"1.16.1","artists":{"index":[` +
			`{"name":"A","artist":[{"id":"a1","name":"Autechre","albumCount":11}]},` +
			`{"name":"B","artist":[{"id":"a2","name":"Boards","albumCount":4,"coverArt":"ar-a2"}]}]}}}`))
	})
	entries, err := lib.Artists(context.Background())
	if err != nil {
		t.Fatalf("Artists: %v", err)
	}
	if len(entries) != 2 || entries[0].Name != "A" || entries[1].Name != "B" {
		t.Fatalf("unexpected buckets %+v", entries)
	}
	boards := entries[1].Artists[0]
	if boards.Name != "Boards" || boards.CoverArt == nil || *boards.CoverArt != "ar-a2" {
		t.Errorf("optional coverArt lost in conversion: %+v", boards)
	}
	if entries[0].Artists[0].CoverArt != nil {
		t.Errorf("absent coverArt must stay absent")
	}
}

func TestAlbumConversionCarriesSongs(t *testing.T) {
	lib := testLibrary(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"subsonic-response":{"status":"ok","version":"1.16.1","album":` +
			`{"id":"al1","name":"Geogaddi","artist":"Boards","songCount":1,"duration":320,"year":2002,` +
			`"song":[{"id":"s1","title":"Gyroscope","artist":"Boards","album":"Geogaddi","duration":320,"size":900,"track":5,"bitRate":320}]}}}`))
	})
	album, songs, err := lib.Album(context.Background(), "al1")
	if err != nil {
		t.Fatalf("Album: %v", err)
	}
	if album.Year == nil || *album.Year != 2002 {
		t.Errorf("album year lost: %+v", album)
	}
	if len(songs) != 1 {
		t.Fatalf("songs = %v", songs)
	}
	song := songs[0]
	if song.Track == nil || *song.Track != 5 || song.BitRate == nil || *song.BitRate != 320 {
		t.Errorf("song optionals lost: %+v", song)
	}
	if song.Year != nil || song.Path != nil {
		t.Errorf("absent song optionals defaulted: %+v", song)
	}
}

func TestSearchNormalizesSections(t *testing.T) {
	lib := testLibrary(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"subsonic-response":{"status":"ok","version":"1.16.1","searchResult3":` +
			`{"album":[{"id":"al1","name":"MHTRTC","artist":"Boards","songCount":12,"duration":3600}]}}}`))
	})
	results, err := lib.Search(context.Background(), "boards")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if results.IsEmpty() {
		t.Fatalf("results should not be empty")
	}
	if len(results.Artists) != 0 || len(results.Albums) != 1 || len(results.Songs) != 0 {
		t.Errorf("unexpected sections %+v", results)
	}
}
