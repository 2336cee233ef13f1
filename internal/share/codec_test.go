package share

import (
	"bytes"
	"compress/flate"
	"compress/zlib"
	"encoding/base64"
	"encoding/json"
	"errors"
	"math/rand"
	"regexp"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/divelog/internal/models"
	"github.com/iudanet/divelog/internal/transform"
)

var tokenPattern = regexp.MustCompile(`^1-[A-Za-z0-9_-]*$`)

// ignoreRaw сравнивает погружения только по объявленным полям
var ignoreRaw = cmpopts.IgnoreFields(models.Dive{}, "Raw")

func sampleDive() models.Dive {
	return models.Dive{
		Number:           42,
		SubsurfaceNumber: 142,
		Date:             "2024-06-01",
		Time:             "09:30:00",
		Location:         "Récif <Sud> & \"Tombant\"",
		Rating:           4,
		Visibility:       3,
		DiveDuration:     "45:00 min",
		Temperature:      models.Temperature{Air: "24.0 °C", Water: "19.5 °C"},
		Buddy:            "Alice",
		Tags:             []string{"boat", "wall"},
		Cylinders:        json.RawMessage(`[{"size":"12.0 l","start":"200.0 bar"}]`),
		MaxDepth:         18500,
		Duration:         2700,
		Samples: []models.Sample{
			{0, 0, 0, 0},
			{10, 1500, 210000, 293150},
			{20.5, 3250.25, 209876.5, 292650},
			{2700, 0, 60000, 0},
		},
		Events:        []models.DiveEvent{{Name: "gaschange", Value: "21", Type: "25", Time: "0:10"}},
		SAC:           "14.2",
		DiveComputers: models.DiveComputer{Model: "Perdix", DeviceID: "a1", DiveID: "b2"},
		Notes:         "line one\nline two",
	}
}

func TestEncode_ConcreteScenario(t *testing.T) {
	record := map[string]any{
		"number":  1,
		"samples": [][]int{{0, 0, 0, 0}, {60, 5000, 200000, 300000}},
	}

	token, err := Encode(record)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(token, "1-"))

	dive, err := Decode(token)
	require.NoError(t, err)
	assert.Equal(t, 1, dive.Number)
	require.Len(t, dive.Samples, 2)
	assert.Equal(t, 5000.0, dive.Samples[1][1])
}

func TestEncodeDecode_RoundTripDive(t *testing.T) {
	tests := []struct {
		name string
		dive models.Dive
	}{
		{name: "full dive", dive: sampleDive()},
		{name: "zero dive", dive: models.Dive{}},
		{name: "numbers only", dive: models.Dive{Number: 7, MaxDepth: 1, Samples: []models.Sample{{1e-7, 1e21, 0.1, 123456789.123}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := Encode(tt.dive)
			require.NoError(t, err)

			got, err := Decode(token)
			require.NoError(t, err)
			if diff := cmp.Diff(tt.dive, *got, ignoreRaw); diff != "" {
				t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

// randomValue builds a JSON-compatible value: maps, slices, strings, float64,
// bool and nil, the shapes json.Unmarshal produces for interface{}.
func randomValue(rng *rand.Rand, depth int) any {
	kind := rng.Intn(7)
	if depth > 3 {
		kind = rng.Intn(4)
	}
	switch kind {
	case 0:
		return nil
	case 1:
		return rng.Intn(2) == 0
	case 2:
		return rng.NormFloat64() * float64(rng.Intn(1_000_000))
	case 3:
		return randomString(rng)
	case 4, 5:
		out := make([]any, rng.Intn(6))
		for i := range out {
			out[i] = randomValue(rng, depth+1)
		}
		return out
	default:
		out := make(map[string]any)
		for i := rng.Intn(6); i > 0; i-- {
			out[randomString(rng)+string(rune('a'+i))] = randomValue(rng, depth+1)
		}
		return out
	}
}

func randomString(rng *rand.Rand) string {
	runes := []rune("abcXYZ019 -_\"\\/<>&é日本\n")
	var sb strings.Builder
	for i := rng.Intn(12); i > 0; i-- {
		sb.WriteRune(runes[rng.Intn(len(runes))])
	}
	return sb.String()
}

func TestEncodeDecode_RoundTripArbitraryJSON(t *testing.T) {
	rng := rand.New(rand.NewSource(20240601))

	for i := 0; i < 200; i++ {
		want := map[string]any{"trip": "random", "payload": randomValue(rng, 0)}

		token, err := Encode(want)
		require.NoError(t, err)
		require.Regexp(t, tokenPattern, token)

		var got any
		require.NoError(t, DecodeInto(token, &got))
		if diff := cmp.Diff(any(want), got); diff != "" {
			t.Fatalf("case %d mismatch (-want +got):\n%s", i, diff)
		}
	}
}

func TestDecodeInto_RawMessageKeepsUnknownFields(t *testing.T) {
	raw := `{"number":3,"x_custom":{"nested":[1,2.5,"three"]},"samples":[]}`
	token, err := Encode(json.RawMessage(raw))
	require.NoError(t, err)

	var got json.RawMessage
	require.NoError(t, DecodeInto(token, &got))
	assert.JSONEq(t, raw, string(got))
}

func TestEncode_NoHTMLEscaping(t *testing.T) {
	token, err := Encode(map[string]string{"location": "<Reef> & Co"})
	require.NoError(t, err)

	compressed, err := transform.DecodeText(strings.TrimPrefix(token, ProtocolV1))
	require.NoError(t, err)
	payload, err := transform.Decompress(compressed)
	require.NoError(t, err)
	assert.Equal(t, `{"location":"<Reef> & Co"}`, string(payload))
}

func TestEncode_PropagatesMarshalError(t *testing.T) {
	_, err := Encode(map[string]any{"bad": make(chan int)})
	require.Error(t, err)

	var unsupported *json.UnsupportedTypeError
	assert.True(t, errors.As(err, &unsupported))
}

func TestDecode_Idempotent(t *testing.T) {
	token, err := Encode(sampleDive())
	require.NoError(t, err)

	first, err := Decode(token)
	require.NoError(t, err)
	first.Samples[0][1] = 99999
	first.Tags[0] = "mutated"

	second, err := Decode(token)
	require.NoError(t, err)
	if diff := cmp.Diff(sampleDive(), *second, ignoreRaw); diff != "" {
		t.Fatalf("second decode mismatch (-want +got):\n%s", diff)
	}
}

func TestDecode_UnknownProtocol(t *testing.T) {
	tests := []struct {
		token   string
		wantTag string
	}{
		{token: "9-anything", wantTag: "9-"},
		{token: "0-abc", wantTag: "0-"},
		{token: "10-eJw", wantTag: "10-"},
		{token: "2-", wantTag: "2-"},
		{token: "x", wantTag: "x"},
		{token: "", wantTag: ""},
		{token: "eJyrVg", wantTag: "eJyrVg"},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			dive, err := Decode(tt.token)
			require.Error(t, err)
			assert.Nil(t, dive)

			var unknown *UnknownProtocolError
			require.True(t, errors.As(err, &unknown))
			assert.Equal(t, tt.wantTag, unknown.Tag)
			assert.ErrorIs(t, err, ErrUnknownProtocol)
			assert.Equal(t, KindUnknownProtocol, Kind(err))

			var raw json.RawMessage
			err = DecodeInto(tt.token, &raw)
			assert.ErrorIs(t, err, ErrUnknownProtocol)
			assert.Nil(t, raw)
		})
	}
}

func assertDecodeFailure(t *testing.T, err error) {
	t.Helper()

	var failed *DecodeFailedError
	require.Truef(t, errors.As(err, &failed), "expected DecodeFailedError, got %v", err)
	assert.Contains(t,
		[]string{KindInvalidEncoding, KindCorruptStream, KindMalformedPayload},
		Kind(err))
}

func TestDecode_FlippedCharacters(t *testing.T) {
	original := sampleDive()
	token, err := Encode(original)
	require.NoError(t, err)

	const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_"
	for i := len(ProtocolV1); i < len(token); i++ {
		replacement := alphabet[(strings.IndexByte(alphabet, token[i])+17)%len(alphabet)]
		tampered := token[:i] + string(replacement) + token[i+1:]

		dive, err := Decode(tampered)
		if err == nil {
			// only bits the decoder ignores may change without an error
			if diff := cmp.Diff(original, *dive, ignoreRaw); diff != "" {
				t.Fatalf("silently wrong dive for flip at %d (-want +got):\n%s", i, diff)
			}
			continue
		}
		assert.Nil(t, dive)
		assertDecodeFailure(t, err)
	}
}

func TestDecode_Truncated(t *testing.T) {
	token, err := Encode(sampleDive())
	require.NoError(t, err)

	for cut := len(ProtocolV1); cut < len(token); cut++ {
		dive, err := Decode(token[:cut])
		require.Errorf(t, err, "truncated to %d chars", cut)
		assert.Nil(t, dive)
		assertDecodeFailure(t, err)
	}
}

func TestDecode_Failures(t *testing.T) {
	tokenFor := func(payload []byte) string {
		compressed, err := transform.Compress(payload)
		require.NoError(t, err)
		return ProtocolV1 + transform.EncodeText(compressed)
	}

	tests := []struct {
		name     string
		token    string
		wantKind string
	}{
		{name: "padding", token: "1-eJw=", wantKind: KindInvalidEncoding},
		{name: "standard alphabet", token: "1-ab+/", wantKind: KindInvalidEncoding},
		{name: "whitespace", token: "1-eJyr VkrMSQ", wantKind: KindInvalidEncoding},
		{name: "empty payload", token: "1-", wantKind: KindCorruptStream},
		{name: "not compressed", token: "1-" + transform.EncodeText([]byte(`{"number":1}`)), wantKind: KindCorruptStream},
		{name: "not json", token: tokenFor([]byte("dive log")), wantKind: KindMalformedPayload},
		{name: "trailing garbage", token: tokenFor([]byte(`{"number":1} x`)), wantKind: KindMalformedPayload},
		{name: "not utf8", token: tokenFor([]byte{'{', '"', 0xff, '"', ':', '1', '}'}), wantKind: KindMalformedPayload},
		{name: "json array", token: tokenFor([]byte(`[1,2,3]`)), wantKind: KindMalformedPayload},
		{name: "json null", token: tokenFor([]byte(`null`)), wantKind: KindMalformedPayload},
		{name: "wrong field type", token: tokenFor([]byte(`{"number":"one"}`)), wantKind: KindMalformedPayload},
		{name: "short sample", token: tokenFor([]byte(`{"samples":[[0,0]]}`)), wantKind: KindMalformedPayload},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dive, err := Decode(tt.token)
			require.Error(t, err)
			assert.Nil(t, dive)
			assert.ErrorIs(t, err, ErrDecodeFailed)
			assert.Equal(t, tt.wantKind, Kind(err))
			assert.False(t, errors.Is(err, ErrUnknownProtocol))
		})
	}
}

func TestDecode_AcceptsIndependentZlib(t *testing.T) {
	var buf bytes.Buffer
	zw := zlib.NewWriter(&buf)
	_, err := zw.Write([]byte(`{"number":5,"location":"Quarry","samples":[[0,0,0,0]]}`))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	token := "1-" + base64.RawURLEncoding.EncodeToString(buf.Bytes())
	dive, err := Decode(token)
	require.NoError(t, err)
	assert.Equal(t, 5, dive.Number)
	assert.Equal(t, "Quarry", dive.Location)
}

func TestDecode_RejectsRawDeflate(t *testing.T) {
	var buf bytes.Buffer
	fw, err := flate.NewWriter(&buf, flate.DefaultCompression)
	require.NoError(t, err)
	_, err = fw.Write([]byte(`{"number":5}`))
	require.NoError(t, err)
	require.NoError(t, fw.Close())

	_, err = Decode("1-" + base64.RawURLEncoding.EncodeToString(buf.Bytes()))
	require.Error(t, err)
	assert.Equal(t, KindCorruptStream, Kind(err))
}

func TestDecode_OversizedPayload(t *testing.T) {
	notes := strings.Repeat("x", 4096)
	token, err := Encode(map[string]any{"number": 3, "notes": notes})
	require.NoError(t, err)

	dive, err := DecodeLimit(token, 1024)
	require.Error(t, err)
	assert.Nil(t, dive)
	assert.Equal(t, KindCorruptStream, Kind(err))
	assert.ErrorIs(t, err, ErrDecodeFailed)
	assert.ErrorIs(t, err, transform.ErrTooLarge)

	dive, err = DecodeLimit(token, 8192)
	require.NoError(t, err)
	assert.Equal(t, notes, dive.Notes)
}

func TestDecode_DefaultLimit(t *testing.T) {
	// нули сжимаются почти без остатка, токен остается коротким
	compressed, err := transform.Compress(make([]byte, MaxPayloadSize+1))
	require.NoError(t, err)
	token := ProtocolV1 + transform.EncodeText(compressed)

	_, err = Decode(token)
	assert.ErrorIs(t, err, transform.ErrTooLarge)

	var raw json.RawMessage
	err = DecodeInto(token, &raw)
	assert.ErrorIs(t, err, transform.ErrTooLarge)
	assert.Nil(t, raw)
}

func TestDecode_KeepsPayloadInRaw(t *testing.T) {
	record := `{"number":8,"coordinates":{"lat":27.9,"lng":34.3}}`
	compressed, err := transform.Compress([]byte(record))
	require.NoError(t, err)

	dive, err := Decode(ProtocolV1 + transform.EncodeText(compressed))
	require.NoError(t, err)
	assert.Equal(t, 8, dive.Number)
	assert.JSONEq(t, record, string(dive.Raw))
}

func TestDecodeInto_LeavesDestinationOnFailure(t *testing.T) {
	compressed, err := transform.Compress([]byte(`{"number":1,"samples":[[1,2]]}`))
	require.NoError(t, err)
	token := ProtocolV1 + transform.EncodeText(compressed)

	dst := models.Dive{Number: 77, Location: "kept"}
	err = DecodeInto(token, &dst)
	require.Error(t, err)
	assert.Equal(t, models.Dive{Number: 77, Location: "kept"}, dst)
}

func TestDecodeInto_RequiresPointer(t *testing.T) {
	token, err := Encode(sampleDive())
	require.NoError(t, err)

	var dive models.Dive
	assert.Error(t, DecodeInto(token, dive))
	assert.Error(t, DecodeInto(token, nil))

	var nilPtr *models.Dive
	assert.Error(t, DecodeInto(token, nilPtr))
}

func TestEncode_URLSafety(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 100; i++ {
		token, err := Encode(randomValue(rng, 0))
		require.NoError(t, err)
		assert.Regexp(t, tokenPattern, token)
		assert.NotContains(t, token[2:], "=")
	}
}

func TestProtocolTag(t *testing.T) {
	tag, ok := ProtocolTag("1-abc")
	assert.True(t, ok)
	assert.Equal(t, "1-", tag)

	tag, ok = ProtocolTag("abc")
	assert.False(t, ok)
	assert.Equal(t, "abc", tag)

	tag, ok = ProtocolTag("12-a-b")
	assert.True(t, ok)
	assert.Equal(t, "12-", tag)
}
