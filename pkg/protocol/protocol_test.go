package protocol

import (
	"encoding/json"
	"net/url"
	"reflect"
	"strings"
	"testing"

	"github.com/urmzd/kodakam/pkg/catalog"
)

// Reply captured from a camera on firmware 517260.
const caminfoReply = "get_caminfo: flicker=50&flipup=0&fliplr=0&brate=550&svol=2&mvol=22&wifi=82&bat=14&hum=-1&tem=-273&hum_float=-1.0&tem_float=-273.0&storage=1&md=0:0:3:0&sd=0:2:3:0&td=0:3:1529:0&lbd=1:0:1:0&ir=0&lulla=0&res=720&sdcap=-113&sdfree=0&ssid1=Zen+7530&ssid2=&ssid3=Zen+7530&localip=192.168.178.36&rp_conn=disconnect&soc_ver=517260&"

func TestTokenize(t *testing.T) {
	got := Tokenize("a=1&b=&c")
	want := []Field{{"a", "1"}, {"b", ""}, {"c", ""}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestTokenize_TrailingAmpersand(t *testing.T) {
	got := Tokenize("flicker=50&flipup=0&")
	want := []Field{{"flicker", "50"}, {"flipup", "0"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestTokenize_DuplicateKeysPreserved(t *testing.T) {
	got := Tokenize("ssid=a&ssid=b&ssid=a")
	if len(got) != 3 || got[0].Value != "a" || got[1].Value != "b" || got[2].Value != "a" {
		t.Errorf("duplicates not preserved: %v", got)
	}
}

func TestTokenize_DecodesValuesNotKeys(t *testing.T) {
	got := Tokenize("ssid%31=Zen+7530&name=My%20Cam%26Co")
	want := []Field{{"ssid%31", "Zen 7530"}, {"name", "My Cam&Co"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestTokenize_SplitsOnFirstEquals(t *testing.T) {
	got := Tokenize("key=a=b")
	if len(got) != 1 || got[0].Key != "key" || got[0].Value != "a=b" {
		t.Errorf("got %v", got)
	}
}

func TestTokenize_MalformedEscapeKeptRaw(t *testing.T) {
	got := Tokenize("v=100%")
	if got[0].Value != "100%" {
		t.Errorf("got %q, want raw value", got[0].Value)
	}
}

func TestTokenize_Empty(t *testing.T) {
	if got := Tokenize(""); len(got) != 0 {
		t.Errorf("got %v, want no fields", got)
	}
}

func TestDecode_Failed(t *testing.T) {
	r := Decode("get_caminfo", "get_caminfo: -1")
	if r.Outcome != OutcomeFailed {
		t.Errorf("outcome = %s, want failed", r.Outcome)
	}
	if len(r.Fields) != 0 {
		t.Errorf("failed response carries fields: %v", r.Fields)
	}
}

func TestDecode_FailedWithWhitespace(t *testing.T) {
	r := Decode("set_flicker", "set_flicker: -1\r\n")
	if r.Outcome != OutcomeFailed {
		t.Errorf("outcome = %s, want failed", r.Outcome)
	}
}

func TestDecode_Empty(t *testing.T) {
	r := Decode("get_caminfo", "get_caminfo: ")
	if r.Outcome != OutcomeEmpty {
		t.Errorf("outcome = %s, want empty", r.Outcome)
	}
}

func TestDecode_OK(t *testing.T) {
	r := Decode("get_caminfo", "get_caminfo: flicker=50&flipup=0&")
	if r.Outcome != OutcomeOK {
		t.Fatalf("outcome = %s, want ok", r.Outcome)
	}
	want := []Field{{"flicker", "50"}, {"flipup", "0"}}
	if !reflect.DeepEqual(r.Fields, want) {
		t.Errorf("fields = %v, want %v", r.Fields, want)
	}
}

func TestDecode_Unparseable(t *testing.T) {
	r := Decode("get_caminfo", "some garbage")
	if r.Outcome != OutcomeUnparseable {
		t.Errorf("outcome = %s, want unparseable", r.Outcome)
	}
	if r.Raw != "some garbage" {
		t.Errorf("raw = %q", r.Raw)
	}
}

func TestDecode_InvalidModeIsUnparseable(t *testing.T) {
	r := Decode("get_session_key", "Invalid mode (null)")
	if r.Outcome != OutcomeUnparseable {
		t.Errorf("outcome = %s, want unparseable", r.Outcome)
	}
}

func TestDecode_OtherCommandsPrefixIsUnparseable(t *testing.T) {
	r := Decode("get_version", "get_caminfo: flicker=50")
	if r.Outcome != OutcomeUnparseable {
		t.Errorf("outcome = %s, want unparseable", r.Outcome)
	}
}

func TestDecode_ActionStatus(t *testing.T) {
	r := Decode("melody1", "melody1: 0")
	if r.Outcome != OutcomeOK {
		t.Fatalf("outcome = %s, want ok", r.Outcome)
	}
	if len(r.Fields) != 1 || r.Fields[0].Key != "0" || r.Fields[0].Value != "" {
		t.Errorf("fields = %v", r.Fields)
	}
}

func TestDecode_Garbage(t *testing.T) {
	inputs := []string{
		"", ":", ": ", "get_caminfo:", "get_caminfo: &&&", "get_caminfo: %%%=%%%",
		"get_caminfo: get_caminfo: -1", "\x00\xff", strings.Repeat("&=", 1000),
	}
	for _, in := range inputs {
		r := Decode("get_caminfo", in)
		if r.Command != "get_caminfo" {
			t.Errorf("%q: command = %q", in, r.Command)
		}
		if r.Outcome.String() == "" {
			t.Errorf("%q: empty outcome", in)
		}
	}
}

func TestDecode_Caminfo(t *testing.T) {
	r := Decode("get_caminfo", caminfoReply)
	if r.Outcome != OutcomeOK {
		t.Fatalf("outcome = %s", r.Outcome)
	}
	if v, _ := r.Get("ssid1"); v != "Zen 7530" {
		t.Errorf("ssid1 = %q", v)
	}
	if v, ok := r.Get("ssid2"); !ok || v != "" {
		t.Errorf("ssid2 = %q, %v", v, ok)
	}
	if r.Fields[0].Key != "flicker" || r.Fields[len(r.Fields)-1].Key != "soc_ver" {
		t.Errorf("order not preserved: first %s, last %s", r.Fields[0].Key, r.Fields[len(r.Fields)-1].Key)
	}

	comps := r.Composites()
	if len(comps) != 4 {
		t.Fatalf("composites = %v", comps)
	}
	if comps["md"] != (Composite{Enabled: false, Schedule: 0, Sensitivity: 3, Reserved: 0}) {
		t.Errorf("md = %+v", comps["md"])
	}
	if !comps["lbd"].Enabled {
		t.Error("lbd should be enabled")
	}
	if comps["td"].Sensitivity != 1529 {
		t.Errorf("td sensitivity = %d", comps["td"].Sensitivity)
	}
}

func TestInterpretComposite(t *testing.T) {
	got, ok := InterpretComposite("0:0:3:0")
	if !ok {
		t.Fatal("expected composite")
	}
	want := Composite{Enabled: false, Schedule: 0, Sensitivity: 3, Reserved: 0}
	if got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}

	for _, raw := range []string{"1:2:3", "1:2:3:4:5", "", "a:b:c:d", "720"} {
		if _, ok := InterpretComposite(raw); ok {
			t.Errorf("%q should not be composite", raw)
		}
	}
}

func TestOutcome_JSON(t *testing.T) {
	b, err := json.Marshal(Decode("get_version", "get_version: -1"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(b), `"outcome":"failed"`) {
		t.Errorf("unexpected JSON: %s", b)
	}

	var r Response
	if err := json.Unmarshal(b, &r); err != nil {
		t.Fatal(err)
	}
	if r.Outcome != OutcomeFailed {
		t.Errorf("outcome = %s after round trip", r.Outcome)
	}
}

func TestEncode_NoParameters(t *testing.T) {
	cmd, _ := catalog.Default().Lookup("get_caminfo")
	got := Encode(BaseURL("192.168.1.20"), cmd, nil)
	if got != "http://192.168.1.20/?req=get_caminfo" {
		t.Errorf("got %s", got)
	}
}

func TestEncode_DeclaredOrderAndOmission(t *testing.T) {
	cmd, _ := catalog.Default().Lookup("change_router_info")
	got := Encode("http://cam/", cmd, catalog.Values{
		"security": "wpa2",
		"key":      "p@ss word&more",
		"ssid":     "Zen 7530",
		"bogus":    "x",
	})
	want := "http://cam/?req=change_router_info&ssid=Zen+7530&key=p%40ss+word%26more&security=wpa2"
	if got != want {
		t.Errorf("got  %s\nwant %s", got, want)
	}
}

func TestEncode_SkipsEmptyValues(t *testing.T) {
	cmd, _ := catalog.Default().Lookup("set_night_vision")
	got := Encode("http://cam/", cmd, catalog.Values{"mode": 1, "intensity": ""})
	if got != "http://cam/?req=set_night_vision&mode=1" {
		t.Errorf("got %s", got)
	}
}

func TestEncode_ReqIsToken(t *testing.T) {
	for _, cmd := range catalog.Default().All() {
		u, err := url.Parse(Encode(BaseURL("10.0.0.2:8080"), cmd, nil))
		if err != nil {
			t.Fatalf("%s: %v", cmd.Key, err)
		}
		if got := u.Query().Get("req"); got != cmd.Token {
			t.Errorf("%s: req = %q", cmd.Key, got)
		}
	}
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	cmd, _ := catalog.Default().Lookup("change_router_info")
	values := catalog.Values{"key": "a+b=c", "ssid": "Café 5G", "security": "wpa"}

	encoded := Encode("http://cam/", cmd, values)
	_, query, _ := strings.Cut(encoded, "?req="+cmd.Token+"&")
	echo := cmd.Token + ": " + query + "&"

	r := Decode(cmd.Token, echo)
	if r.Outcome != OutcomeOK {
		t.Fatalf("outcome = %s", r.Outcome)
	}

	want := []Field{{"ssid", "Café 5G"}, {"key", "a+b=c"}, {"security", "wpa"}}
	if !reflect.DeepEqual(r.Fields, want) {
		t.Errorf("got %v, want %v", r.Fields, want)
	}
}
