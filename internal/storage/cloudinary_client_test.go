package storage

import (
	"context"
	"errors"
	"testing"

	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"wellnessPosts/internal/config"
)

type mockCloudinary struct {
	mock.Mock
}

func (m *mockCloudinary) Upload(ctx context.Context, file interface{}, params uploader.UploadParams) (*uploader.UploadResult, error) {
	args := m.Called(ctx, file, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*uploader.UploadResult), args.Error(1)
}

func (m *mockCloudinary) Destroy(ctx context.Context, params uploader.DestroyParams) (*uploader.DestroyResult, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*uploader.DestroyResult), args.Error(1)
}

func TestNewCloudinaryClient_MissingCredentials(t *testing.T) {
	client, err := NewCloudinaryClient(config.Cloudinary{CloudName: "demo"})

	assert.Error(t, err)
	assert.Nil(t, client)
}

func TestCloudinaryClient_UploadImage(t *testing.T) {
	image := dataURI("image/png", pngBytes)

	tests := []struct {
		name        string
		result      *uploader.UploadResult
		err         error
		expectURL   string
		expectError bool
	}{
		{
			name: "Успешная загрузка",
			result: &uploader.UploadResult{
				PublicID:  "wellnessZ/abc",
				SecureURL: "https://res.cloudinary.com/demo/image/upload/wellnessZ/abc.png",
			},
			expectURL: "https://res.cloudinary.com/demo/image/upload/wellnessZ/abc.png",
		},
		{
			name:        "Ошибка сети",
			err:         errors.New("timeout"),
			expectError: true,
		},
		{
			name:        "Ошибка в ответе API",
			result:      &uploader.UploadResult{Error: api.ErrorResp{Message: "Invalid image file"}},
			expectError: true,
		},
		{
			name:        "Пустой URL",
			result:      &uploader.UploadResult{PublicID: "x"},
			expectError: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			upload := new(mockCloudinary)
			client := &CloudinaryClient{upload: upload}

			var result any
			if tc.result != nil {
				result = tc.result
			}
			upload.On("Upload", mock.Anything, image, uploader.UploadParams{Folder: "wellnessZ"}).
				Return(result, tc.err)

			uploaded, err := client.UploadImage(context.Background(), image, "wellnessZ")

			if tc.expectError {
				assert.Error(t, err)
				assert.Nil(t, uploaded)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tc.expectURL, uploaded.URL)
				assert.Equal(t, "wellnessZ/abc", uploaded.ObjectID)
			}
			upload.AssertExpectations(t)
		})
	}
}

func TestCloudinaryClient_DeleteImage(t *testing.T) {
	upload := new(mockCloudinary)
	client := &CloudinaryClient{upload: upload}

	upload.On("Destroy", mock.Anything, uploader.DestroyParams{PublicID: "wellnessZ/abc"}).
		Return(&uploader.DestroyResult{Result: "ok"}, nil)
	upload.On("Destroy", mock.Anything, uploader.DestroyParams{PublicID: "wellnessZ/gone"}).
		Return(&uploader.DestroyResult{Error: api.ErrorResp{Message: "not found"}}, nil)

	assert.NoError(t, client.DeleteImage(context.Background(), "wellnessZ/abc"))
	assert.Error(t, client.DeleteImage(context.Background(), "wellnessZ/gone"))
}

func TestNewStorage_UnknownProvider(t *testing.T) {
	s, err := NewStorage(context.Background(), &config.Config{Media: config.Media{Provider: "s3"}})

	assert.Error(t, err)
	assert.Nil(t, s)
}
