package backup

import (
	"context"
	"fmt"
	"io"

	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
)

const folderMimeType = "application/vnd.google-apps.folder"

// GoogleDrive is the thin layer over the drive v3 files API used by the archive backup.
type GoogleDrive struct {
	service   *drive.Service
	shareWith string
}

func NewGoogleDrive(ctx context.Context, credentialsJson []byte, shareWith string) (*GoogleDrive, error) {
	driveService, err := drive.NewService(ctx, option.WithCredentialsJSON(credentialsJson))
	if err != nil {
		return nil, fmt.Errorf("unable to retrieve drive client: %w", err)
	}
	return &GoogleDrive{
		service:   driveService,
		shareWith: shareWith,
	}, nil
}

// FindFolder returns the id of the first folder named name, or "" when there is none.
func (d *GoogleDrive) FindFolder(ctx context.Context, name string) (string, error) {
	query := fmt.Sprintf("mimeType = '%s' and trashed = false and name = '%s'", folderMimeType, name)
	res, err := d.service.
		Files.List().
		Q(query).
		Fields("files(id, name)").
		Context(ctx).
		Do()
	if err != nil {
		return "", fmt.Errorf("list folders: %w", err)
	}
	if len(res.Files) == 0 {
		return "", nil
	}
	return res.Files[0].Id, nil
}

func (d *GoogleDrive) CreateFolder(ctx context.Context, name string) (string, error) {
	folder, err := d.service.
		Files.Create(&drive.File{
			Name:     name,
			MimeType: folderMimeType,
		}).
		Fields("id").
		Context(ctx).
		Do()
	if err != nil {
		return "", fmt.Errorf("create folder: %w", err)
	}
	if err := d.share(ctx, folder.Id); err != nil {
		return folder.Id, err
	}
	return folder.Id, nil
}

func (d *GoogleDrive) DeleteFile(ctx context.Context, id string) error {
	return d.service.Files.Delete(id).Context(ctx).Do()
}

func (d *GoogleDrive) ListFiles(ctx context.Context, folderID string) ([]*drive.File, error) {
	query := fmt.Sprintf("'%s' in parents and mimeType != '%s' and trashed = false", folderID, folderMimeType)
	res, err := d.service.
		Files.List().
		Q(query).
		Fields("files(id, name, createdTime, appProperties)").
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("list backup files: %w", err)
	}
	return res.Files, nil
}

func (d *GoogleDrive) Upload(ctx context.Context, file *drive.File, content io.Reader) (string, error) {
	created, err := d.service.
		Files.Create(file).
		Fields("id, parents").
		Media(content).
		Context(ctx).
		Do()
	if err != nil {
		return "", fmt.Errorf("upload %s: %w", file.Name, err)
	}
	if err := d.share(ctx, created.Id); err != nil {
		return created.Id, err
	}
	return created.Id, nil
}

func (d *GoogleDrive) share(ctx context.Context, fileID string) error {
	if d.shareWith == "" {
		return nil
	}
	_, err := d.service.Permissions.
		Create(fileID, &drive.Permission{
			EmailAddress: d.shareWith,
			Type:         "user",
			Role:         "reader",
		}).
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("share %s: %w", fileID, err)
	}
	return nil
}
