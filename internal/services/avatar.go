package services

import (
	"context"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"github.com/google/uuid"
	types "github.com/creativahub/creativahub-backend/internal/domain"
	"github.com/creativahub/creativahub-backend/internal/platform/logger"
	"golang.org/x/image/font"
)

// AvatarService renders an initials avatar for users created without an
// avatar_url and stores it under the local media dir. The whole subsystem
// is optional: when no font is configured the constructor fails and the
// caller wires a nil service instead.
type AvatarService interface {
	CreateUserAvatar(ctx context.Context, user *types.User) error
}

type avatarService struct {
	log      *logger.Logger
	mediaDir string
	fontFace font.Face
	bgColors []color.NRGBA
}

func NewAvatarService(log *logger.Logger, mediaDir, fontPath string) (AvatarService, error) {
	serviceLog := log.With("service", "AvatarService")

	if strings.TrimSpace(fontPath) == "" {
		return nil, fmt.Errorf("avatar font path is empty")
	}
	serviceLog.Info("Loading avatar font", "font", fontPath)

	face, err := loadFontFace(fontPath, 206)
	if err != nil {
		return nil, fmt.Errorf("could not load avatar font: %w", err)
	}

	return &avatarService{
		log:      serviceLog,
		mediaDir: mediaDir,
		fontFace: face,
		bgColors: defaultAvatarColors(),
	}, nil
}

func (as *avatarService) CreateUserAvatar(ctx context.Context, user *types.User) error {
	if user == nil || user.ID == uuid.Nil {
		return fmt.Errorf("user required")
	}

	const size = 512

	dc := gg.NewContext(size, size)
	dc.DrawCircle(float64(size)/2, float64(size)/2, float64(size)/2)
	dc.Clip()

	dc.SetColor(as.pickColor(user.ID))
	dc.DrawRectangle(0, 0, float64(size), float64(size))
	dc.Fill()

	initials := computeInitials(user.FullName)
	dc.SetFontFace(as.fontFace)
	tw, th := dc.MeasureString(initials)
	cx, cy := float64(size)/2, float64(size)/2
	dc.SetColor(color.White)
	dc.DrawString(initials, cx-(tw/2)+5, cy+(th/2)-10)

	dir := filepath.Join(as.mediaDir, "avatars")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create avatar dir: %w", err)
	}
	path := filepath.Join(dir, user.ID.String()+".png")
	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("save avatar: %w", err)
	}

	user.AvatarURL = "/media/avatars/" + user.ID.String() + ".png"
	return nil
}

// pickColor is deterministic per user so a regenerated avatar keeps its
// background.
func (as *avatarService) pickColor(id uuid.UUID) color.NRGBA {
	var sum int
	for _, b := range id {
		sum += int(b)
	}
	return as.bgColors[sum%len(as.bgColors)]
}

func computeInitials(fullName string) string {
	parts := strings.Fields(strings.TrimSpace(fullName))
	switch len(parts) {
	case 0:
		return "?"
	case 1:
		return strings.ToUpper(parts[0][:1])
	default:
		return strings.ToUpper(parts[0][:1]) + strings.ToUpper(parts[len(parts)-1][:1])
	}
}

func defaultAvatarColors() []color.NRGBA {
	return []color.NRGBA{
		{R: 0x5B, G: 0x8D, B: 0xEF, A: 0xFF},
		{R: 0xEF, G: 0x5B, B: 0x7A, A: 0xFF},
		{R: 0x43, G: 0xA0, B: 0x47, A: 0xFF},
		{R: 0xF2, G: 0x99, B: 0x3E, A: 0xFF},
		{R: 0x8E, G: 0x5B, B: 0xEF, A: 0xFF},
		{R: 0x2B, G: 0xAB, B: 0xB0, A: 0xFF},
	}
}

func loadFontFace(fontPath string, size float64) (font.Face, error) {
	fontBytes, err := os.ReadFile(fontPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read font file: %w", err)
	}
	parsedFont, err := truetype.Parse(fontBytes)
	if err != nil {
		return nil, fmt.Errorf("failed to parse TTF: %w", err)
	}
	face := truetype.NewFace(parsedFont, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	return face, nil
}
