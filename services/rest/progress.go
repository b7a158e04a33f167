package restsvc

import (
	"io"

	"github.com/shareulbi/webcore/core"
)

// progressReader reports bytes as the transport consumes them, which is as
// close to "upload progress" as a client can observe.
type progressReader struct {
	r     io.Reader
	total int64
	sent  int64
	fn    core.ProgressFunc
}

func (pr *progressReader) Read(p []byte) (int, error) {
	n, err := pr.r.Read(p)
	if n > 0 {
		pr.sent += int64(n)
		pr.fn(pr.sent, pr.total)
	}
	return n, err
}
