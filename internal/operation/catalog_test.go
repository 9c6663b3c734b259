package operation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func ids(descs []Descriptor) []string {
	out := make([]string, len(descs))
	for i, d := range descs {
		out[i] = d.ID
	}
	return out
}

func TestDefault_ListOrder(t *testing.T) {
	list := Default().List()

	require.Len(t, list, 20)
	require.Equal(t, []string{
		ToBase64, FromBase64, URLEncode, URLDecode, ToHex, FromHex, HTMLEncode, HTMLDecode,
		MD5, SHA256, CRC32,
		CaesarCipher, ROT13, XORCipher,
		Reverse, ToUpper, ToLower, RemoveSpaces,
		JSONPretty, JSONMinify,
	}, ids(list))
}

func TestDefault_ListIsRestartable(t *testing.T) {
	first := Default().List()
	first[0].ID = "mutated"

	second := Default().List()
	require.Equal(t, ToBase64, second[0].ID, "List must hand out a copy")
}

func TestFilterByCategory_Hashing(t *testing.T) {
	got := Default().FilterByCategory(CategoryHashing)
	require.Equal(t, []string{MD5, SHA256, CRC32}, ids(got))
}

func TestFilterByCategory_All(t *testing.T) {
	require.Equal(t, Default().List(), Default().FilterByCategory(CategoryAll))
}

func TestFilterByCategory_PreservesRelativeOrder(t *testing.T) {
	cat := Default()
	for _, c := range Categories()[1:] {
		filtered := cat.FilterByCategory(c)

		var expected []string
		for _, d := range cat.List() {
			if d.Category == c {
				expected = append(expected, d.ID)
			}
		}
		require.Equal(t, expected, ids(filtered), "category %s", c)
		require.Equal(t, len(expected), cat.Count(c))
	}
}

func TestCount_Defaults(t *testing.T) {
	cat := Default()
	require.Equal(t, 20, cat.Count(CategoryAll))
	require.Equal(t, 8, cat.Count(CategoryEncoding))
	require.Equal(t, 3, cat.Count(CategoryHashing))
	require.Equal(t, 3, cat.Count(CategoryCrypto))
	require.Equal(t, 4, cat.Count(CategoryTransform))
	require.Equal(t, 2, cat.Count(CategoryFormat))
}

func TestSearch(t *testing.T) {
	cat := Default()

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"empty query returns everything", "", ids(cat.List())},
		{"matches id case-insensitively", "base64", []string{ToBase64, FromBase64}},
		{"matches description", "substitution", []string{CaesarCipher, ROT13}},
		{"matches either", "json", []string{JSONPretty, JSONMinify}},
		{"no match is empty, not an error", "zzz-nothing", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, ids(cat.Search(tt.query)))
		})
	}
}

func TestSearch_IsSubsetInOrder(t *testing.T) {
	cat := Default()
	rapid.Check(t, func(rt *rapid.T) {
		query := rapid.StringMatching(`[a-zA-Z ]{0,4}`).Draw(rt, "query")
		got := cat.Search(query)

		pos := -1
		for _, d := range got {
			require.True(t, d.Matches(strings.ToLower(query)))
			i := indexOf(cat.List(), d.ID)
			require.Greater(t, i, pos, "results must keep catalog order")
			pos = i
		}
	})
}

func indexOf(list []Descriptor, id string) int {
	for i, d := range list {
		if d.ID == id {
			return i
		}
	}
	return -1
}

func TestLookup(t *testing.T) {
	d, ok := Default().Lookup(CRC32)
	require.True(t, ok)
	require.Equal(t, CategoryHashing, d.Category)

	_, ok = Default().Lookup("crc32")
	require.False(t, ok, "lookup is exact")
}

func TestNew_Validation(t *testing.T) {
	_, err := New(Descriptor{ID: "", Category: CategoryFormat})
	require.ErrorContains(t, err, "id is required")

	_, err = New(Descriptor{ID: "A", Category: "nope"})
	require.ErrorContains(t, err, "unknown category")

	_, err = New(Descriptor{ID: "A", Category: CategoryAll})
	require.ErrorContains(t, err, "unknown category")

	_, err = New(
		Descriptor{ID: "A", Category: CategoryFormat},
		Descriptor{ID: "A", Category: CategoryCrypto},
	)
	require.ErrorContains(t, err, "duplicate id")

	require.Panics(t, func() { MustNew(Descriptor{}) })
}

func TestNew_ArbitrarySize(t *testing.T) {
	var descs []Descriptor
	for i := 0; i < 100; i++ {
		descs = append(descs, Descriptor{ID: strings.Repeat("x", i+1), Category: CategoryTransform})
	}
	cat, err := New(descs...)
	require.NoError(t, err)
	require.Equal(t, 100, cat.Len())
	require.Len(t, cat.FilterByCategory(CategoryTransform), 100)
}

func TestNilCatalog(t *testing.T) {
	var cat *Catalog
	require.Empty(t, cat.List())
	require.Empty(t, cat.Search("x"))
	require.Zero(t, cat.Len())
	_, ok := cat.Lookup("x")
	require.False(t, ok)
}

func TestCategory(t *testing.T) {
	require.Equal(t, "ENCODE", CategoryEncoding.Label())
	require.Equal(t, "ALL", CategoryAll.Label())
	require.Equal(t, "CUSTOM", Category("custom").Label())
	require.True(t, CategoryCrypto.Valid())
	require.False(t, CategoryAll.Valid())

	c, err := ParseCategory("HASH")
	require.NoError(t, err)
	require.Equal(t, CategoryHashing, c)

	c, err = ParseCategory(" Format ")
	require.NoError(t, err)
	require.Equal(t, CategoryFormat, c)

	c, err = ParseCategory("")
	require.NoError(t, err)
	require.Equal(t, CategoryAll, c)

	_, err = ParseCategory("bogus")
	require.Error(t, err)

	require.Equal(t, CategoryAll, Categories()[0])
	require.Len(t, Categories(), 6)
}
