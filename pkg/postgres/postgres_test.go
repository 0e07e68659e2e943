package postgres

import "testing"

func TestConfigDSN(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want string
	}{
		{
			name: "default sslmode",
			cfg:  Config{Host: "localhost", Port: 5432, User: "faq", Password: "secret", DBName: "faqbot"},
			want: "host=localhost port=5432 user=faq password=secret dbname=faqbot sslmode=disable",
		},
		{
			name: "explicit sslmode",
			cfg:  Config{Host: "db", Port: 6543, User: "u", Password: "p", DBName: "d", SSLMode: "require"},
			want: "host=db port=6543 user=u password=p dbname=d sslmode=require",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cfg.DSN(); got != tt.want {
				t.Errorf("DSN() = %q, want %q", got, tt.want)
			}
		})
	}
}
