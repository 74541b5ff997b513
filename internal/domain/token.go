package domain

import (
	"encoding/json"
	"fmt"
	"time"
)

// Reserved attribute keys. Every other key is a trait.
const (
	AttrKeyStickers = "stickers"
	AttrKeyFusion   = "fusion"
)

// Token is an NFT owned by exactly one user
type Token struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	ImageURL   string          `json:"image_url"`
	OwnerID    string          `json:"owner_id"`
	Attributes TokenAttributes `json:"attributes"`
	CreatedAt  time.Time       `json:"created_at"`
}

// FusionProvenance records the parents of a token produced by token fusion
type FusionProvenance struct {
	Parents []string  `json:"parents"`
	Date    time.Time `json:"date"`
}

// TokenAttributes is the typed form of the token attribute bag.
// On the wire it stays a flat JSON object: stickers and fusion sit next to the traits.
type TokenAttributes struct {
	Stickers []string
	Fusion   *FusionProvenance
	Traits   map[string]any
}

// MarshalJSON flattens traits, stickers and fusion into one object
func (a TokenAttributes) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(a.Traits)+2)
	for k, v := range a.Traits {
		out[k] = v
	}
	stickers := a.Stickers
	if stickers == nil {
		stickers = []string{}
	}
	out[AttrKeyStickers] = stickers
	if a.Fusion != nil {
		out[AttrKeyFusion] = a.Fusion
	}
	return json.Marshal(out)
}

// UnmarshalJSON splits a flat attribute object into its typed parts
func (a *TokenAttributes) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*a = TokenAttributes{}
	for k, v := range raw {
		switch k {
		case AttrKeyStickers:
			if err := json.Unmarshal(v, &a.Stickers); err != nil {
				return fmt.Errorf("%w: stickers must be a list of ids", ErrInvalidInput)
			}
		case AttrKeyFusion:
			if string(v) == "null" {
				continue
			}
			var f FusionProvenance
			if err := json.Unmarshal(v, &f); err != nil {
				return fmt.Errorf("%w: malformed fusion provenance", ErrInvalidInput)
			}
			a.Fusion = &f
		default:
			var trait any
			if err := json.Unmarshal(v, &trait); err != nil {
				return err
			}
			if a.Traits == nil {
				a.Traits = make(map[string]any)
			}
			a.Traits[k] = trait
		}
	}
	return nil
}

// Clone returns a deep copy of the attributes
func (a TokenAttributes) Clone() TokenAttributes {
	c := TokenAttributes{}
	if a.Stickers != nil {
		c.Stickers = append([]string(nil), a.Stickers...)
	}
	if a.Fusion != nil {
		f := *a.Fusion
		f.Parents = append([]string(nil), a.Fusion.Parents...)
		c.Fusion = &f
	}
	if a.Traits != nil {
		c.Traits = make(map[string]any, len(a.Traits))
		for k, v := range a.Traits {
			c.Traits[k] = v
		}
	}
	return c
}

// WithSticker returns a copy with stickerID appended. Duplicates are kept.
func (a TokenAttributes) WithSticker(stickerID string) TokenAttributes {
	c := a.Clone()
	c.Stickers = append(c.Stickers, stickerID)
	return c
}

// MergeAttributes shallow-merges two attribute sets, right-biased on trait conflicts.
// Sticker lists are concatenated (left first). Fusion provenance is not inherited.
func MergeAttributes(left, right TokenAttributes) TokenAttributes {
	merged := TokenAttributes{
		Stickers: make([]string, 0, len(left.Stickers)+len(right.Stickers)),
		Traits:   make(map[string]any, len(left.Traits)+len(right.Traits)),
	}
	merged.Stickers = append(merged.Stickers, left.Stickers...)
	merged.Stickers = append(merged.Stickers, right.Stickers...)
	for k, v := range left.Traits {
		merged.Traits[k] = v
	}
	for k, v := range right.Traits {
		merged.Traits[k] = v
	}
	return merged
}

// ValidateTraits checks that every trait is a scalar (string, number or bool)
func (a TokenAttributes) ValidateTraits() error {
	for k, v := range a.Traits {
		switch v.(type) {
		case string, float64, bool, int, int64:
		default:
			return fmt.Errorf("%w: attribute %q must be a string, number or boolean", ErrInvalidInput, k)
		}
	}
	return nil
}
