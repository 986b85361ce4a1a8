package masking

import (
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestService() *Service {
	return NewService(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestMaskEmail(t *testing.T) {
	s := newTestService()
	out := s.Mask("我的邮箱是 zhang.wei@example.com 记一下")
	assert.NotContains(t, out, "zhang.wei@example.com")
	assert.Contains(t, out, "[邮箱已隐藏]")
}

func TestMaskChineseMobile(t *testing.T) {
	s := newTestService()
	for _, in := range []string{
		"打我电话13812345678吧",
		"+8613812345678",
		"13912345678",
	} {
		out := s.Mask(in)
		assert.NotContains(t, out, "13812345678")
		assert.NotContains(t, out, "13912345678")
	}
}

func TestMaskLongDigitRun(t *testing.T) {
	s := newTestService()
	out := s.Mask("我QQ是123456789")
	assert.NotContains(t, out, "123456789")
	assert.Contains(t, out, "[数字串已隐藏]")

	// Short runs survive.
	assert.Equal(t, "今年25岁", s.Mask("今年25岁"))
}

func TestMaskIDNumber(t *testing.T) {
	s := newTestService()
	out := s.Mask("身份证 11010519900101123X 勿传")
	assert.NotContains(t, out, "11010519900101123X")
}

func TestJSONFieldMasker(t *testing.T) {
	s := newTestService()
	in := `{"name":"小雨","phone":"13812345678","nested":{"email":"a@b.cn","mood":"ok"}}`
	out := s.Mask(in)
	assert.NotContains(t, out, "13812345678")
	assert.NotContains(t, out, "a@b.cn")
	assert.Contains(t, out, "小雨")
	assert.Contains(t, out, "ok")
}

func TestJSONFieldMaskerInvalidJSONFallsThrough(t *testing.T) {
	m := &jsonFieldMasker{}
	in := "{not json at all"
	assert.Equal(t, in, m.Mask(in))
}

func TestPreviewTruncates(t *testing.T) {
	s := newTestService()
	long := strings.Repeat("很", 50)
	out := s.Preview(long, 10)
	assert.Equal(t, 11, len([]rune(out))) // 10 runes + ellipsis
}

func TestMaskPlainTextUnchanged(t *testing.T) {
	s := newTestService()
	in := "今天天气不错，出去走走？"
	assert.Equal(t, in, s.Mask(in))
}
