package services

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	fake "github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"amdaops-http-service/internal/domain/models"
)

func newOfficerService(t *testing.T) (*OfficerService, *PhotoService) {
	t.Helper()
	cfg := testConfig(t)
	photos := NewPhotoService(cfg).(*PhotoService)
	svc := NewOfficerService(cfg, photos).(*OfficerService)
	svc.now = fixedClock
	return svc, photos
}

func pngUpload(t *testing.T, name string) *PhotoUpload {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	img.Set(1, 1, color.NRGBA{R: 200, A: 255})
	// everything else stays fully transparent
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return &PhotoUpload{Filename: name, Size: int64(buf.Len()), Reader: bytes.NewReader(buf.Bytes())}
}

func jpegUpload(t *testing.T, name string) *PhotoUpload {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 8, 6))
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, img, nil))
	return &PhotoUpload{Filename: name, Size: int64(buf.Len()), Reader: bytes.NewReader(buf.Bytes())}
}

func fakeOfficer() OfficerInput {
	return OfficerInput{Name: fake.Name(), Email: fake.Email(), Phone: fake.Phone()}
}

func TestPhotoSaveFlattensOntoWhite(t *testing.T) {
	_, photos := newOfficerService(t)

	path, err := photos.Save("abc", pngUpload(t, "me.PNG"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(photos.Dir(), "abc.png"), path)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)

	r, g, b, a := img.At(0, 0).RGBA()
	assert.Equal(t, [4]uint32{0xffff, 0xffff, 0xffff, 0xffff}, [4]uint32{r, g, b, a})
	_, _, _, a = img.At(1, 1).RGBA()
	assert.Equal(t, uint32(0xffff), a)
}

func TestPhotoSaveRejectsBadInput(t *testing.T) {
	_, photos := newOfficerService(t)

	_, err := photos.Save("x", &PhotoUpload{Filename: "doc.gif", Reader: bytes.NewReader([]byte("GIF89a"))})
	assert.ErrorIs(t, err, ErrPhotoUnsupported)

	_, err = photos.Save("x", &PhotoUpload{Filename: "fake.webp", Reader: bytes.NewReader([]byte("not an image"))})
	assert.ErrorIs(t, err, ErrPhotoUnsupported)

	big := bytes.Repeat([]byte{0}, 5<<20+1)
	_, err = photos.Save("x", &PhotoUpload{Filename: "big.jpg", Reader: bytes.NewReader(big)})
	assert.ErrorIs(t, err, ErrPhotoTooLarge)

	_, err = photos.Save("x", &PhotoUpload{Filename: "big.jpg", Size: 6 << 20, Reader: bytes.NewReader(nil)})
	assert.ErrorIs(t, err, ErrPhotoTooLarge)

	entries, _ := os.ReadDir(photos.Dir())
	assert.Empty(t, entries)
}

func TestPhotoDeleteStaysInsideDir(t *testing.T) {
	_, photos := newOfficerService(t)
	outside := filepath.Join(filepath.Dir(photos.Dir()), "keep.png")
	writeFile(t, outside, "x")

	require.NoError(t, photos.Delete(outside))
	require.NoError(t, photos.Delete(filepath.Join(photos.Dir(), "missing.png")))
	assert.FileExists(t, outside)
}

func TestCreateOfficer(t *testing.T) {
	svc, photos := newOfficerService(t)

	o, err := svc.CreateOfficer(fakeOfficer(), jpegUpload(t, "face.jpeg"))
	require.NoError(t, err)
	assert.Len(t, o.ID, 36)
	assert.Equal(t, models.OfficerStatusActive, o.Status)
	assert.Equal(t, "2024-03-01T09:30:00.000000", o.CreatedAt)
	assert.Equal(t, filepath.Join(photos.Dir(), o.ID+".png"), o.PhotoPath)
	assert.FileExists(t, o.PhotoPath)

	got, err := svc.GetOfficer(o.ID)
	require.NoError(t, err)
	assert.Equal(t, *o, *got)
	assert.True(t, svc.View(*got).HasPhoto)
}

func TestCreateOfficerValidation(t *testing.T) {
	svc, _ := newOfficerService(t)

	_, err := svc.CreateOfficer(OfficerInput{Email: fake.Email()}, nil)
	assert.True(t, IsValidation(err))

	_, err = svc.CreateOfficer(OfficerInput{Name: fake.Name()}, nil)
	assert.True(t, IsValidation(err))

	o, err := svc.CreateOfficer(OfficerInput{Name: fake.Name(), Phone: fake.Phone()}, nil)
	require.NoError(t, err)
	assert.Empty(t, o.PhotoPath)
}

func TestUpdateOfficerPhotoLifecycle(t *testing.T) {
	svc, _ := newOfficerService(t)
	o, err := svc.CreateOfficer(fakeOfficer(), nil)
	require.NoError(t, err)

	in := fakeOfficer()
	in.Status = models.OfficerStatusInactive
	up, err := svc.UpdateOfficer(o.ID, in, pngUpload(t, "new.png"), false)
	require.NoError(t, err)
	assert.Equal(t, in.Name, up.Name)
	assert.Equal(t, models.OfficerStatusInactive, up.Status)
	assert.Equal(t, "2024-03-01T09:30:00.000000", up.UpdatedAt)
	assert.FileExists(t, up.PhotoPath)

	up, err = svc.UpdateOfficer(o.ID, in, nil, true)
	require.NoError(t, err)
	assert.Empty(t, up.PhotoPath)
	assert.NoFileExists(t, filepath.Join(svc.Config.PhotosDir, o.ID+".png"))

	n, err := svc.CountActive()
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestUpdateOfficerErrors(t *testing.T) {
	svc, _ := newOfficerService(t)
	o, err := svc.CreateOfficer(fakeOfficer(), nil)
	require.NoError(t, err)

	_, err = svc.UpdateOfficer("missing", fakeOfficer(), nil, false)
	assert.ErrorIs(t, err, ErrOfficerNotFound)

	in := fakeOfficer()
	in.Status = "Retired"
	_, err = svc.UpdateOfficer(o.ID, in, nil, false)
	assert.True(t, IsValidation(err))
}

func TestUpdateOfficerBadPhotoKeepsCurrentPhoto(t *testing.T) {
	svc, _ := newOfficerService(t)
	o, err := svc.CreateOfficer(fakeOfficer(), pngUpload(t, "p.png"))
	require.NoError(t, err)
	require.FileExists(t, o.PhotoPath)

	bad := &PhotoUpload{Filename: "x.png", Size: 3, Reader: bytes.NewReader([]byte("abc"))}
	_, err = svc.UpdateOfficer(o.ID, fakeOfficer(), bad, true)
	assert.ErrorIs(t, err, ErrPhotoUnsupported)

	got, err := svc.GetOfficer(o.ID)
	require.NoError(t, err)
	assert.Equal(t, o.PhotoPath, got.PhotoPath)
	assert.Equal(t, o.Name, got.Name)
	assert.FileExists(t, got.PhotoPath)

	_, err = svc.UpdateOfficer("missing", fakeOfficer(), pngUpload(t, "p.png"), false)
	assert.ErrorIs(t, err, ErrOfficerNotFound)
	assert.NoFileExists(t, filepath.Join(svc.Config.PhotosDir, "missing.png"))
}

func TestUpdateOfficerReplacePhotoWithRemoveFlag(t *testing.T) {
	svc, _ := newOfficerService(t)
	o, err := svc.CreateOfficer(fakeOfficer(), pngUpload(t, "p.png"))
	require.NoError(t, err)

	up, err := svc.UpdateOfficer(o.ID, fakeOfficer(), jpegUpload(t, "new.jpg"), true)
	require.NoError(t, err)
	assert.Equal(t, o.PhotoPath, up.PhotoPath)
	assert.FileExists(t, up.PhotoPath)
}

func TestDeleteOfficerRemovesPhoto(t *testing.T) {
	svc, _ := newOfficerService(t)
	keep, err := svc.CreateOfficer(fakeOfficer(), nil)
	require.NoError(t, err)
	gone, err := svc.CreateOfficer(fakeOfficer(), pngUpload(t, "p.png"))
	require.NoError(t, err)

	require.NoError(t, svc.DeleteOfficer(gone.ID))
	assert.NoFileExists(t, gone.PhotoPath)

	officers, err := svc.ListOfficers()
	require.NoError(t, err)
	require.Len(t, officers, 1)
	assert.Equal(t, keep.ID, officers[0].ID)

	assert.ErrorIs(t, svc.DeleteOfficer(gone.ID), ErrOfficerNotFound)
}

func TestListOfficersMissingFile(t *testing.T) {
	svc, _ := newOfficerService(t)
	officers, err := svc.ListOfficers()
	require.NoError(t, err)
	assert.NotNil(t, officers)
	assert.Empty(t, officers)
}

func TestInitialsAndAvatarColor(t *testing.T) {
	assert.Equal(t, "JD", Initials("john  doe smith"))
	assert.Equal(t, "Á", Initials("ángel"))
	assert.Equal(t, "?", Initials("   "))

	c := AvatarColor("Jane Roe")
	assert.Contains(t, AvatarPalette, c)
	assert.Equal(t, c, AvatarColor("Jane Roe"))
}
