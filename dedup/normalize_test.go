package dedup

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_Normalize_Strips_Noise(t *testing.T) {
	req := require.New(t)

	req.Equal(normalize("오늘 운세 어때?"), normalize("오늘 운세 어때!!"))
	req.Equal(normalize("오늘 운세 어때?"), normalize("오늘운세어때~ㅋㅋ"))
	req.Equal(normalize("잘 될까요...ㅠㅠ"), normalize("잘될까요"))
	req.NotEqual(normalize("오늘 운세"), normalize("내일 운세"))
	req.Equal("", normalize("  ?!~ ㅋㅋㅎㅎ "))
}
