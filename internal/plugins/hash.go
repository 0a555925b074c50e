package plugins

import (
	"context"
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"

	"biu-actions/internal/action"
	"biu-actions/internal/i18n"
)

type Hash struct{}

func (Hash) Name() string     { return "hash" }
func (Hash) Title() string    { return "Hash Calculator" }
func (Hash) Category() string { return action.CategoryDevtools }

func (Hash) Available(sel action.Selection) action.Availability { return nonEmpty(sel) }

func (Hash) Perform(_ context.Context, sel action.Selection, h action.Host) error {
	if err := h.PasteText(hashReport(sel.Text)); err != nil {
		return err
	}
	notify(h, i18n.MsgHashDone, "")
	return nil
}

func hashReport(text string) string {
	data := []byte(text)
	md5Sum := md5.Sum(data)
	sha1Sum := sha1.Sum(data)
	sha256Sum := sha256.Sum256(data)
	return fmt.Sprintf("MD5:\n%s\n\nSHA-1:\n%s\n\nSHA-256:\n%s\n\nBase64:\n%s",
		hex.EncodeToString(md5Sum[:]),
		hex.EncodeToString(sha1Sum[:]),
		hex.EncodeToString(sha256Sum[:]),
		base64.StdEncoding.EncodeToString(data),
	)
}
