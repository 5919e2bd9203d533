// services/fakes_test.go
package services

import (
	"bytes"
	"context"
	"encoding/base64"
	"image/color"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ediestyles/closet_backend/apperr"
	"github.com/ediestyles/closet_backend/models"
)

// fakeCategoryStore is an in-memory CategoryStore seeded with Other.
// afterPush, when set, runs after every PushItems so tests can interleave a
// concurrent mutation between two workflow steps.
type fakeCategoryStore struct {
	categories map[string]*models.Category
	afterPush  func()
}

func newFakeCategoryStore() *fakeCategoryStore {
	other := models.OtherCategory()
	return &fakeCategoryStore{categories: map[string]*models.Category{
		other.String(): {ID: other, Name: "Other", Items: []models.FileRef{}},
	}}
}

func (s *fakeCategoryStore) add(name string) models.CategoryRef {
	ref := models.CategoryByID(primitive.NewObjectID())
	s.categories[ref.String()] = &models.Category{ID: ref, Name: name, Items: []models.FileRef{}}
	return ref
}

func (s *fakeCategoryStore) List(context.Context) ([]models.Category, error) {
	out := []models.Category{}
	for _, c := range s.categories {
		out = append(out, *c)
	}
	return out, nil
}

func (s *fakeCategoryStore) FindByRef(_ context.Context, ref models.CategoryRef) (*models.Category, error) {
	c, ok := s.categories[ref.String()]
	if !ok {
		return nil, apperr.NotFound("category not found")
	}
	copied := *c
	copied.Items = append([]models.FileRef{}, c.Items...)
	return &copied, nil
}

func (s *fakeCategoryStore) Exists(_ context.Context, ref models.CategoryRef) (bool, error) {
	_, ok := s.categories[ref.String()]
	return ok, nil
}

func (s *fakeCategoryStore) NameExists(_ context.Context, name string) (bool, error) {
	for _, c := range s.categories {
		if c.Name == name {
			return true, nil
		}
	}
	return false, nil
}

func (s *fakeCategoryStore) Insert(_ context.Context, name string) (models.CategoryRef, error) {
	return s.add(name), nil
}

func (s *fakeCategoryStore) SetName(_ context.Context, ref models.CategoryRef, name string) (int64, error) {
	c, ok := s.categories[ref.String()]
	if !ok {
		return 0, nil
	}
	c.Name = name
	return 1, nil
}

func (s *fakeCategoryStore) Delete(_ context.Context, ref models.CategoryRef) (int64, error) {
	if _, ok := s.categories[ref.String()]; !ok {
		return 0, nil
	}
	delete(s.categories, ref.String())
	return 1, nil
}

func (s *fakeCategoryStore) PushItems(_ context.Context, ref models.CategoryRef, items []models.FileRef) (int64, error) {
	c, ok := s.categories[ref.String()]
	if !ok {
		return 0, nil
	}
	c.Items = append(c.Items, items...)
	if s.afterPush != nil {
		s.afterPush()
	}
	return 1, nil
}

func (s *fakeCategoryStore) PullItem(_ context.Context, ref models.CategoryRef, fileID string) (int64, error) {
	c, ok := s.categories[ref.String()]
	if !ok {
		return 0, nil
	}
	for i, item := range c.Items {
		if item.FileID == fileID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func (s *fakeCategoryStore) SetItemName(_ context.Context, ref models.CategoryRef, fileID, name string) (int64, error) {
	c, ok := s.categories[ref.String()]
	if !ok {
		return 0, nil
	}
	for i := range c.Items {
		if c.Items[i].FileID == fileID {
			c.Items[i].FileName = name
			return 1, nil
		}
	}
	return 0, nil
}

func (s *fakeCategoryStore) FilesForClient(_ context.Context, clientID string) ([]models.FileRef, error) {
	out := []models.FileRef{}
	for _, c := range s.categories {
		for _, item := range c.Items {
			if item.ClientID == clientID {
				out = append(out, item)
			}
		}
	}
	return out, nil
}

// fakeClientStore is an in-memory ClientStore that records credit debits.
type fakeClientStore struct {
	clients map[string]*models.Client
	debits  int
}

func newFakeClientStore(clients ...*models.Client) *fakeClientStore {
	s := &fakeClientStore{clients: map[string]*models.Client{}}
	for _, c := range clients {
		s.clients[c.ID.Hex()] = c
	}
	return s
}

func (s *fakeClientStore) FindByID(_ context.Context, id string) (*models.Client, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return nil, apperr.InvalidArgument("invalid or missing client id")
	}
	c, ok := s.clients[id]
	if !ok {
		return nil, apperr.NotFound("client not found")
	}
	return c, nil
}

func (s *fakeClientStore) FindByEmail(_ context.Context, email string) (*models.Client, error) {
	for _, c := range s.clients {
		if c.Email == email {
			return c, nil
		}
	}
	return nil, apperr.NotFound("client not found")
}

func (s *fakeClientStore) Create(_ context.Context, client models.Client) (primitive.ObjectID, error) {
	client.ID = primitive.NewObjectID()
	s.clients[client.ID.Hex()] = &client
	return client.ID, nil
}

func (s *fakeClientStore) List(context.Context) ([]models.Client, error) {
	out := []models.Client{}
	for _, c := range s.clients {
		out = append(out, *c)
	}
	return out, nil
}

func (s *fakeClientStore) Credits(_ context.Context, id string) (int, error) {
	c, ok := s.clients[id]
	if !ok {
		return 0, apperr.Forbidden("client does not have any credits or does not exist")
	}
	return c.Credits, nil
}

func (s *fakeClientStore) DeductCredit(_ context.Context, id string, current int) error {
	c, ok := s.clients[id]
	if !ok {
		return apperr.Internal("no credits were deducted")
	}
	c.Credits = current - 1
	s.debits++
	return nil
}

// fakeBlobStore records uploads and deletions.
type fakeBlobStore struct {
	puts    map[string][]byte
	deleted []string
	failPut bool
}

func newFakeBlobStore() *fakeBlobStore {
	return &fakeBlobStore{puts: map[string][]byte{}}
}

func (s *fakeBlobStore) Put(_ context.Context, key string, data []byte) (string, error) {
	if s.failPut {
		return "", apperr.Unavailable("error uploading file to storage: boom")
	}
	s.puts[key] = data
	return "https://storage.googleapis.com/test-bucket/" + key, nil
}

func (s *fakeBlobStore) Delete(_ context.Context, key string) error {
	s.deleted = append(s.deleted, key)
	return nil
}

// fakeRemover returns a fixed processed image and records its calls.
type fakeRemover struct {
	result []byte
	calls  int
	crop   bool
	fail   bool
}

func (r *fakeRemover) Process(_ context.Context, _ []byte, crop bool) ([]byte, error) {
	if r.fail {
		return nil, apperr.Unavailable("error removing image background: down")
	}
	r.calls++
	r.crop = crop
	return r.result, nil
}

// pngBytes renders a solid image of the given size as PNG.
func pngBytes(t *testing.T, width, height int) []byte {
	t.Helper()
	img := imaging.New(width, height, color.NRGBA{R: 120, G: 20, B: 20, A: 255})
	var buf bytes.Buffer
	require.NoError(t, imaging.Encode(&buf, img, imaging.PNG))
	return buf.Bytes()
}

func pngDataURL(t *testing.T, width, height int) string {
	t.Helper()
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(pngBytes(t, width, height))
}

func boolPtr(b bool) *bool { return &b }
