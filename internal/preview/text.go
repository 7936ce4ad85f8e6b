package preview

import (
	fsutil "github.com/kk-code-lab/rpeek/internal/fs"
)

type textProducer struct {
	limit int64
}

func (textProducer) Handles(string) bool { return true }

func (p textProducer) Produce(path string) Result {
	content, err := fsutil.ReadFileLimited(path, p.limit)
	if err != nil {
		return errorResult(path, "text", err)
	}
	text, err := fsutil.DecodeText(content)
	if err != nil {
		return errorResult(path, "text", err)
	}
	return textResult(path, text)
}
