package langid

import "testing"

func TestDetect(t *testing.T) {
	d := New()

	tests := []struct {
		name string
		text string
		want string
	}{
		{"english", "The applicant demonstrates understanding of airspace classes and the requirements for operating within them.", "en"},
		{"spanish", "El solicitante demuestra comprensión de las clases de espacio aéreo y los requisitos para operar dentro de ellas.", "es"},
		{"empty", "", ""},
		{"whitespace", "   \n\t", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := d.Detect(tt.text); got != tt.want {
				t.Errorf("Detect() = %q, want %q", got, tt.want)
			}
		})
	}
}
