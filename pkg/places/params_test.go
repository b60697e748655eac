package places

import "testing"

func TestEncodeParams(t *testing.T) {
	tests := []struct {
		name   string
		params []Param
		want   string
	}{
		{
			name: "order preserved",
			params: []Param{
				{Key: "key", Value: "secret"},
				{Key: "input", Value: "Sicili"},
				{Key: "language", Value: "en"},
			},
			want: "key=secret&input=Sicili&language=en",
		},
		{
			name: "values escaped",
			params: []Param{
				{Key: "input", Value: "caffè & co"},
			},
			want: "input=caff%C3%A8+%26+co",
		},
		{
			name: "empty value keeps key",
			params: []Param{
				{Key: "strictbounds", Value: ""},
			},
			want: "strictbounds=",
		},
		{
			name:   "no params",
			params: nil,
			want:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EncodeParams(tt.params); got != tt.want {
				t.Errorf("EncodeParams() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLatLngString(t *testing.T) {
	tests := []struct {
		name string
		l    LatLng
		want string
	}{
		{"fractional", LatLng{Lat: 37.369, Lng: -122.0}, "37.369,-122"},
		{"whole numbers", LatLng{Lat: 1, Lng: 2}, "1,2"},
		{"high precision", LatLng{Lat: -33.86882, Lng: 151.20929}, "-33.86882,151.20929"},
		{"zero", LatLng{}, "0,0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.l.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNewSessionToken(t *testing.T) {
	a := NewSessionToken()
	b := NewSessionToken()
	if a == "" || b == "" {
		t.Fatal("NewSessionToken() returned empty token")
	}
	if a == b {
		t.Error("NewSessionToken() returned duplicate tokens")
	}
}
