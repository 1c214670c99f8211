package repository

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/stpnv0/HotelDesk/internal/domain"
	"github.com/wb-go/wbf/logger"
)

const fieldsPerLine = 6

// FileStore persists the ledger as plain text, one booking per line:
//
//	id,customer,CATEGORY,nights,total,timestampMillis
//
// Commas in customer names are replaced with spaces before writing and
// fields are otherwise unescaped, so names with embedded newlines are
// not supported and will corrupt the file.
type FileStore struct {
	path   string
	logger logger.Logger
}

func NewFileStore(path string, log logger.Logger) *FileStore {
	return &FileStore{path: path, logger: log}
}

// Load reads every stored booking. A missing file is an empty ledger,
// not an error. Lines that do not parse are skipped; the skipped count
// is logged once.
func (s *FileStore) Load(ctx context.Context) ([]*domain.Booking, error) {
	f, err := os.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("open %s: %w", s.path, err)
	}
	defer f.Close()

	var (
		bookings []*domain.Booking
		dropped  int
	)

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		b, err := decodeLine(sc.Text())
		if err != nil {
			dropped++
			continue
		}
		bookings = append(bookings, b)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}

	if dropped > 0 {
		s.logger.Warn("skipped malformed booking lines",
			logger.String("path", s.path),
			logger.Int("count", dropped),
		)
	}

	return bookings, nil
}

// Save rewrites the whole file in ledger order. There is no write-to-temp
// and rename: a crash mid-write can lose the update.
func (s *FileStore) Save(ctx context.Context, bookings []*domain.Booking) error {
	f, err := os.Create(s.path)
	if err != nil {
		return fmt.Errorf("create %s: %w", s.path, err)
	}

	w := bufio.NewWriter(f)
	for _, b := range bookings {
		if _, err := w.WriteString(encodeLine(b) + "\n"); err != nil {
			f.Close()
			return fmt.Errorf("write %s: %w", s.path, err)
		}
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("flush %s: %w", s.path, err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", s.path, err)
	}

	return nil
}

func encodeLine(b *domain.Booking) string {
	return strings.Join([]string{
		b.ID,
		strings.ReplaceAll(b.CustomerName, ",", " "),
		string(b.Category),
		strconv.Itoa(b.Nights),
		strconv.FormatFloat(b.Total, 'f', 2, 64),
		strconv.FormatInt(b.CreatedAt, 10),
	}, ",")
}

func decodeLine(line string) (*domain.Booking, error) {
	parts := strings.SplitN(line, ",", fieldsPerLine)
	if len(parts) < fieldsPerLine {
		return nil, fmt.Errorf("expected %d fields, got %d", fieldsPerLine, len(parts))
	}

	cat, err := domain.ParseCategory(parts[2])
	if err != nil {
		return nil, err
	}
	nights, err := strconv.Atoi(parts[3])
	if err != nil {
		return nil, fmt.Errorf("nights: %w", err)
	}
	total, err := strconv.ParseFloat(parts[4], 64)
	if err != nil {
		return nil, fmt.Errorf("total: %w", err)
	}
	ts, err := strconv.ParseInt(parts[5], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("timestamp: %w", err)
	}

	return &domain.Booking{
		ID:           parts[0],
		CustomerName: parts[1],
		Category:     cat,
		Nights:       nights,
		Total:        total,
		CreatedAt:    ts,
	}, nil
}
