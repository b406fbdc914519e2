package subsonic

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
)

// AlbumListType selects the ordering of getAlbumList2.
type AlbumListType string

const (
	AlbumListRandom             AlbumListType = "random"
	AlbumListNewest             AlbumListType = "newest"
	AlbumListRecent             AlbumListType = "recent"
	AlbumListFrequent           AlbumListType = "frequent"
	AlbumListAlphabeticalByName AlbumListType = "alphabeticalByName"
	AlbumListAlphabeticalByArtist AlbumListType = "alphabeticalByArtist"
)

func (c *Client) do(ctx context.Context, endpoint string, extraParams map[string]string) (*responseBody, error) {
	requestURL := fmt.Sprintf("%s/rest/%s.view?%s", c.baseURL, endpoint, c.buildParams(extraParams).Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, networkErr(endpoint, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, networkErr(endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, statusErr(endpoint, resp.StatusCode)
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, decodeErr(endpoint, err)
	}

	body := env.Response
	if body.Status != "ok" {
		code, message := 0, "request failed"
		if body.Error != nil {
			code, message = body.Error.Code, body.Error.Message
		}
		return nil, serverErr(endpoint, code, message)
	}
	return &body, nil
}

// Ping checks connectivity and credentials against the server.
func (c *Client) Ping(ctx context.Context) (*PingInfo, error) {
	body, err := c.do(ctx, "ping", nil)
	if err != nil {
		return nil, err
	}
	return &PingInfo{
		Status:        body.Status,
		Version:       body.Version,
		Type:          body.Type,
		ServerVersion: body.ServerVersion,
	}, nil
}

// GetArtists returns the full artist index bucketed by letter.
func (c *Client) GetArtists(ctx context.Context) (*ArtistIndex, error) {
	body, err := c.do(ctx, "getArtists", nil)
	if err != nil {
		return nil, err
	}
	if body.Artists == nil {
		return nil, decodeErr("getArtists", fmt.Errorf("missing artists payload"))
	}
	return body.Artists, nil
}

// GetArtist returns one artist together with its albums.
func (c *Client) GetArtist(ctx context.Context, id string) (*ArtistDetail, error) {
	body, err := c.do(ctx, "getArtist", map[string]string{"id": id})
	if err != nil {
		return nil, err
	}
	if body.Artist == nil {
		return nil, decodeErr("getArtist", fmt.Errorf("missing artist payload"))
	}
	return body.Artist, nil
}

// GetAlbum returns one album together with its songs.
func (c *Client) GetAlbum(ctx context.Context, id string) (*AlbumDetail, error) {
	body, err := c.do(ctx, "getAlbum", map[string]string{"id": id})
	if err != nil {
		return nil, err
	}
	if body.Album == nil {
		return nil, decodeErr("getAlbum", fmt.Errorf("missing album payload"))
	}
	return body.Album, nil
}

// GetSong returns one song by id.
func (c *Client) GetSong(ctx context.Context, id string) (*Song, error) {
	body, err := c.do(ctx, "getSong", map[string]string{"id": id})
	if err != nil {
		return nil, err
	}
	if body.Song == nil {
		return nil, decodeErr("getSong", fmt.Errorf("missing song payload"))
	}
	return body.Song, nil
}

// GetAlbumList returns up to size albums ordered by the given list type.
func (c *Client) GetAlbumList(ctx context.Context, listType AlbumListType, size int) ([]Album, error) {
	body, err := c.do(ctx, "getAlbumList2", map[string]string{
		"type": string(listType),
		"size": strconv.Itoa(size),
	})
	if err != nil {
		return nil, err
	}
	if body.AlbumList2 == nil {
		return nil, decodeErr("getAlbumList2", fmt.Errorf("missing albumList2 payload"))
	}
	return body.AlbumList2.Album, nil
}

// GetRandomSongs returns up to count random songs.
func (c *Client) GetRandomSongs(ctx context.Context, count int) ([]Song, error) {
	body, err := c.do(ctx, "getRandomSongs", map[string]string{"size": strconv.Itoa(count)})
	if err != nil {
		return nil, err
	}
	if body.RandomSongs == nil {
		return nil, decodeErr("getRandomSongs", fmt.Errorf("missing randomSongs payload"))
	}
	return body.RandomSongs.Song, nil
}

// Search runs a free-text search across artists, albums and songs.
func (c *Client) Search(ctx context.Context, query string) (*SearchResult, error) {
	body, err := c.do(ctx, "search3", map[string]string{"query": query})
	if err != nil {
		return nil, err
	}
	if body.SearchResult3 == nil {
		return nil, decodeErr("search3", fmt.Errorf("missing searchResult3 payload"))
	}
	return body.SearchResult3, nil
}

// Star marks an artist, album or song as favourite.
func (c *Client) Star(ctx context.Context, id string) error {
	_, err := c.do(ctx, "star", map[string]string{"id": id})
	return err
}

// Unstar removes the favourite mark again.
func (c *Client) Unstar(ctx context.Context, id string) error {
	_, err := c.do(ctx, "unstar", map[string]string{"id": id})
	return err
}

// StreamURL builds the signed audio stream URL for a song. No request is made;
// the server validates the embedded auth parameters on fetch.
func (c *Client) StreamURL(id string) string {
	params := c.buildParams(map[string]string{"id": id, "format": "mp3"})
	return fmt.Sprintf("%s/rest/stream.view?%s", c.baseURL, params.Encode())
}

// CoverArtURL builds the signed cover art URL for a coverArt reference.
func (c *Client) CoverArtURL(id string, size int) string {
	params := c.buildParams(map[string]string{"id": id, "size": strconv.Itoa(size)})
	return fmt.Sprintf("%s/rest/getCoverArt.view?%s", c.baseURL, params.Encode())
}

// BaseURL returns the server URL this client is bound to.
func (c *Client) BaseURL() string { return c.baseURL }

// Username returns the identity this client authenticates as.
func (c *Client) Username() string { return c.username }

// Close releases the transport's idle connections. Safe to call more than
// once; only the first call has effect.
func (c *Client) Close() {
	c.closeOnce.Do(func() {
		c.httpClient.CloseIdleConnections()
	})
}
