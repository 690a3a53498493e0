package base_test

import (
	"fmt"
	"testing"

	"github.com/hausenergie/librscp-go/base"
	"github.com/stretchr/testify/assert"
)

func TestTagAccessors(t *testing.T) {
	tag := base.Tag(0x0A000001) // INFO namespace, serial number

	assert.Equal(t, base.Namespace(0x0A), tag.Namespace())
	assert.Equal(t, uint32(0x000001), tag.ID())
	assert.False(t, tag.IsResponse())

	rsp := tag.Response()
	assert.Equal(t, base.Tag(0x0A800001), rsp)
	assert.True(t, rsp.IsResponse())
	assert.Equal(t, tag, rsp.Request())
	assert.Equal(t, base.Namespace(0x0A), rsp.Namespace(), "the bit stays out of the namespace")

	assert.True(t, tag.Matches(rsp))
	assert.True(t, rsp.Matches(tag))
	assert.False(t, tag.Matches(base.Tag(0x0A000002)))

	assert.Equal(t, "0x0A800001", rsp.String())
}

func TestLogHex(t *testing.T) {
	format, dump := base.LogHex("TX frame", []byte{0xE3, 0xDC, 0x00})
	assert.Equal(t, "TX frame: E3DC00", fmt.Sprintf(format, dump))
}

func TestEnumNames(t *testing.T) {
	assert.Equal(t, "container", base.DataTypeContainer.String())
	assert.Equal(t, "unknown", base.DataType(0x42).String())

	assert.Equal(t, "admin", base.UserLevelAdmin.String())
	assert.Equal(t, "not-authorized", base.UserLevelNotAuthorized.String())
	assert.Equal(t, "unknown", base.UserLevel(3).String())

	assert.Equal(t, "access-denied", base.ErrorCodeAccessDenied.String())
	assert.Equal(t, "unknown", base.ErrorCodeUnknown.String())
}
