package repository

import (
	"context"
	"errors"
	"image"
	"strings"
	"testing"
)

// fakeSource returns a canned image or error
type fakeSource struct {
	img  image.Image
	err  error
	refs []string
}

func (f *fakeSource) FetchImage(ctx context.Context, ref string) (image.Image, error) {
	f.refs = append(f.refs, ref)
	if f.err != nil {
		return nil, f.err
	}
	return f.img, nil
}

func TestFetchImage(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	repo := NewSourceImageRepository(&fakeSource{img: img})

	got, err := repo.FetchImage(context.Background(), "http://example.com/a.png")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if got != img {
		t.Error("Expected the source image to be returned unchanged")
	}
}

func TestFetchImage_EmptyRef(t *testing.T) {
	repo := NewSourceImageRepository(&fakeSource{})

	for _, ref := range []string{"", "   "} {
		if _, err := repo.FetchImage(context.Background(), ref); !errors.Is(err, ErrInvalidImageRef) {
			t.Errorf("ref %q: expected ErrInvalidImageRef, got %v", ref, err)
		}
	}
}

func TestFetchImage_SourceFailure(t *testing.T) {
	repo := NewSourceImageRepository(&fakeSource{err: errors.New("timeout")})

	_, err := repo.FetchImage(context.Background(), "http://example.com/a.png")
	if !errors.Is(err, ErrImageUnavailable) {
		t.Errorf("Expected ErrImageUnavailable, got %v", err)
	}
}

func TestFetchPair(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	source := &fakeSource{img: img}
	repo := NewSourceImageRepository(source)

	reference, test, err := repo.FetchPair(context.Background(), "ref.png", "test.png")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if reference == nil || test == nil {
		t.Fatal("Expected both images")
	}
	if len(source.refs) != 2 || source.refs[0] != "ref.png" || source.refs[1] != "test.png" {
		t.Errorf("Expected reference fetched before test, got %v", source.refs)
	}
}

func TestFetchPair_NamesFailingSide(t *testing.T) {
	repo := NewSourceImageRepository(&fakeSource{err: errors.New("unreachable")})

	_, _, err := repo.FetchPair(context.Background(), "ref.png", "test.png")
	if err == nil {
		t.Fatal("Expected error")
	}
	if !strings.HasPrefix(err.Error(), "reference image:") {
		t.Errorf("Expected the failing side in the error, got %v", err)
	}
}
