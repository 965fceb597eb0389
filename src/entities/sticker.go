package entities

import "fmt"

// StickerIconURL is the CDN template for sticker assets: sticker id, then file
// extension.
const StickerIconURL = "https://cdn.discordapp.com/stickers/%s.%s"

// StickerFormat is the encoding of a sticker asset.
type StickerFormat int

const (
	StickerFormatPNG  StickerFormat = 1
	StickerFormatAPNG StickerFormat = 2
	// Lottie is a JSON animation rendered client side, not an image.
	StickerFormatLottie StickerFormat = 3

	StickerFormatUnknown StickerFormat = -1
)

var stickerFormats = []StickerFormat{
	StickerFormatPNG,
	StickerFormatAPNG,
	StickerFormatLottie,
	StickerFormatUnknown,
}

type stickerFormatInfo struct {
	name      string
	extension string
}

// APNG files are valid PNG containers and are served with the png extension.
var stickerFormatTable = map[StickerFormat]stickerFormatInfo{
	StickerFormatPNG:     {"PNG", "png"},
	StickerFormatAPNG:    {"APNG", "png"},
	StickerFormatLottie:  {"LOTTIE", "json"},
	StickerFormatUnknown: {"UNKNOWN", ""},
}

// StickerFormatFromID returns the StickerFormat for a wire code, or
// StickerFormatUnknown if the code is not recognised.
func StickerFormatFromID(id int) StickerFormat {
	return fromID(stickerFormats, id, StickerFormatUnknown)
}

// StickerFormats returns every declared StickerFormat, Unknown included.
func StickerFormats() []StickerFormat {
	out := make([]StickerFormat, len(stickerFormats))
	copy(out, stickerFormats)
	return out
}

func (f StickerFormat) known() bool {
	_, ok := stickerFormatTable[f]
	return ok && f != StickerFormatUnknown
}

func (f StickerFormat) ID() int {
	if !f.known() {
		return int(StickerFormatUnknown)
	}
	return int(f)
}

// Extension returns the file extension of the asset. It fails with
// ErrInvalidState for StickerFormatUnknown, which has no extension to report.
func (f StickerFormat) Extension() (string, error) {
	if !f.known() {
		return "", fmt.Errorf("%w: cannot get file extension for StickerFormat.UNKNOWN", ErrInvalidState)
	}
	return stickerFormatTable[f].extension, nil
}

func (f StickerFormat) String() string {
	if !f.known() {
		return "UNKNOWN"
	}
	return stickerFormatTable[f].name
}

// UnmarshalJSON resolves the wire code through StickerFormatFromID.
func (f *StickerFormat) UnmarshalJSON(data []byte) error {
	id, ok, err := decodeID(data)
	if err != nil || !ok {
		return err
	}
	*f = StickerFormatFromID(id)
	return nil
}

// IconURL builds the CDN URL of a sticker. Like Extension, it fails with
// ErrInvalidState when the format is unknown.
func IconURL(stickerID string, format StickerFormat) (string, error) {
	ext, err := format.Extension()
	if err != nil {
		return "", fmt.Errorf("sticker %s: %w", stickerID, err)
	}
	return fmt.Sprintf(StickerIconURL, stickerID, ext), nil
}

// StickerType tells standard stickers from Nitro packs apart from custom guild
// stickers.
type StickerType int

const (
	// StickerTypeStandard stickers come from Nitro sticker packs and also back
	// the wave buttons on welcome messages.
	StickerTypeStandard StickerType = 1
	StickerTypeGuild    StickerType = 2

	StickerTypeUnknown StickerType = -1
)

var stickerTypes = []StickerType{
	StickerTypeStandard,
	StickerTypeGuild,
	StickerTypeUnknown,
}

// StickerTypeFromID returns the StickerType for a wire code, or
// StickerTypeUnknown if the code is not recognised.
func StickerTypeFromID(id int) StickerType {
	return fromID(stickerTypes, id, StickerTypeUnknown)
}

// StickerTypes returns every declared StickerType, Unknown included.
func StickerTypes() []StickerType {
	out := make([]StickerType, len(stickerTypes))
	copy(out, stickerTypes)
	return out
}

func (t StickerType) ID() int {
	return int(StickerTypeFromID(int(t)))
}

func (t StickerType) String() string {
	switch t {
	case StickerTypeStandard:
		return "STANDARD"
	case StickerTypeGuild:
		return "GUILD"
	default:
		return "UNKNOWN"
	}
}

// UnmarshalJSON resolves the wire code through StickerTypeFromID.
func (t *StickerType) UnmarshalJSON(data []byte) error {
	id, ok, err := decodeID(data)
	if err != nil || !ok {
		return err
	}
	*t = StickerTypeFromID(id)
	return nil
}
