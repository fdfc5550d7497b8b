package backup

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/2beens/fitplanner/internal/plans"
	"github.com/2beens/fitplanner/internal/telemetry/tracing"
	"github.com/2beens/fitplanner/pkg"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"google.golang.org/api/drive/v3"
)

//go:generate mockgen -source=$GOFILE -destination=archive_backup_mocks_test.go -package=backup_test

const (
	RootFolderName = "fitplanner-archive-backup"

	archiveChunkSize     = 200 // archived weeks per json file inside the tarball
	archivedUntilProp    = "archivedUntil"
	backupFileMimeType   = "application/gzip"
	backupFileNameFormat = "plan-archive-%d-%d-%d"
)

type archiveLister interface {
	ListArchivedSince(ctx context.Context, since time.Time) ([]plans.ArchivedPlan, error)
}

type driveStore interface {
	FindFolder(ctx context.Context, name string) (string, error)
	CreateFolder(ctx context.Context, name string) (string, error)
	DeleteFile(ctx context.Context, id string) error
	ListFiles(ctx context.Context, folderID string) ([]*drive.File, error)
	Upload(ctx context.Context, file *drive.File, content io.Reader) (string, error)
}

// ArchiveBackupService uploads archived plan weeks to google drive, one
// tar.gz per run, containing only weeks archived since the previous run.
type ArchiveBackupService struct {
	archive  archiveLister
	drive    driveStore
	folderID string
}

func NewArchiveBackupService(ctx context.Context, archive archiveLister, drive driveStore) (*ArchiveBackupService, error) {
	folderID, err := drive.FindFolder(ctx, RootFolderName)
	if err != nil {
		return nil, err
	}

	if folderID == "" {
		log.Println("root backups folder not found, recreating ...")
		folderID, err = drive.CreateFolder(ctx, RootFolderName)
		if err != nil {
			return nil, fmt.Errorf("create root backups folder: %w", err)
		}
		log.Printf("new root backups folder created: %s", folderID)
	} else {
		log.Printf("found backups folder ID: %s", folderID)
	}

	return &ArchiveBackupService{
		archive:  archive,
		drive:    drive,
		folderID: folderID,
	}, nil
}

func (s *ArchiveBackupService) FolderID() string {
	return s.folderID
}

// Reinit drops all existing backups and uploads the whole archive again.
func (s *ArchiveBackupService) Reinit(ctx context.Context, baseTime time.Time) (int, error) {
	log.Println("plan archive backup reinit starting ...")

	if err := s.drive.DeleteFile(ctx, s.folderID); err != nil {
		return 0, fmt.Errorf("delete root backups folder: %w", err)
	}

	folderID, err := s.drive.CreateFolder(ctx, RootFolderName)
	if err != nil {
		return 0, fmt.Errorf("create root backups folder: %w", err)
	}
	log.Printf("new root backups folder created: %s", folderID)
	s.folderID = folderID

	return s.DoBackup(ctx, baseTime)
}

// DoBackup returns the number of archived weeks uploaded.
func (s *ArchiveBackupService) DoBackup(ctx context.Context, baseTime time.Time) (_ int, err error) {
	ctx, span := tracing.GlobalArchiveBackupTracer.Start(ctx, "archiveBackup.do")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	files, err := s.drive.ListFiles(ctx, s.folderID)
	if err != nil {
		return 0, err
	}

	since := lastArchivedAt(files)
	if since.IsZero() {
		log.Println("backups empty, creating initial backup file ...")
	} else {
		log.Printf("last backup covers archive until %v", since)
	}

	archived, err := s.archive.ListArchivedSince(ctx, since)
	if err != nil {
		return 0, fmt.Errorf("list archived plans: %w", err)
	}
	span.SetAttributes(attribute.Int("archive.count", len(archived)))

	if len(archived) == 0 {
		log.Println("no new archived plans to backup, done")
		return 0, nil
	}

	baseName := nextBackupFileName(files, baseTime)
	var buf bytes.Buffer
	if err := packArchive(archived, baseName, &buf); err != nil {
		return 0, fmt.Errorf("pack archive: %w", err)
	}

	until := archived[len(archived)-1].ArchivedAt
	fileID, err := s.drive.Upload(ctx, &drive.File{
		Name:     baseName + ".tar.gz",
		MimeType: backupFileMimeType,
		Parents:  []string{s.folderID},
		AppProperties: map[string]string{
			archivedUntilProp: until.UTC().Format(time.RFC3339Nano),
		},
	}, &buf)
	if err != nil {
		return 0, err
	}

	log.Printf("backup of %d archived weeks since %v saved: %s (%s)", len(archived), since, baseName, fileID)
	return len(archived), nil
}

// lastArchivedAt prefers the watermark stored on the file, falling back to its creation time.
func lastArchivedAt(files []*drive.File) time.Time {
	last := time.Time{}
	for _, file := range files {
		raw := file.AppProperties[archivedUntilProp]
		if raw == "" {
			raw = file.CreatedTime
		}
		at, err := time.Parse(time.RFC3339Nano, raw)
		if err != nil {
			log.Printf(" ---> error parsing archived until for file %s: %s", file.Name, err)
			continue
		}
		if at.After(last) {
			last = at
		}
	}
	return last
}

func nextBackupFileName(files []*drive.File, baseTime time.Time) string {
	base := fmt.Sprintf(backupFileNameFormat, baseTime.Day(), baseTime.Month(), baseTime.Year())
	name := base
	for counter := 2; ; counter++ {
		taken := false
		for _, file := range files {
			if file.Name == name+".tar.gz" {
				taken = true
				break
			}
		}
		if !taken {
			return name
		}
		name = fmt.Sprintf("%s_%d", base, counter)
	}
}

func packArchive(archived []plans.ArchivedPlan, baseName string, w io.Writer) error {
	dir, err := os.MkdirTemp("", "fitplanner-archive-")
	if err != nil {
		return err
	}
	defer func() {
		if err := os.RemoveAll(dir); err != nil {
			log.Errorf("remove archive temp dir: %s", err)
		}
	}()

	for i, chunk := 1, 0; chunk < len(archived); i, chunk = i+1, chunk+archiveChunkSize {
		end := chunk + archiveChunkSize
		if end > len(archived) {
			end = len(archived)
		}

		chunkJson, err := json.Marshal(archived[chunk:end])
		if err != nil {
			return fmt.Errorf("marshal archive chunk %d: %w", i, err)
		}

		chunkFile := filepath.Join(dir, fmt.Sprintf("%s_%d.json", baseName, i))
		if err := os.WriteFile(chunkFile, chunkJson, 0o600); err != nil {
			return err
		}
	}

	return pkg.Compress(dir, w)
}
