package book

import "testing"

func TestFormat_Default(t *testing.T) {
	b := Book{Title: "Dune"}
	if got := b.Format(); got != DefaultFormat {
		t.Errorf("Format() = %q, want %q", got, DefaultFormat)
	}
}

func TestFormat_Explicit(t *testing.T) {
	b := Book{FormatType: "eBook"}
	if got := b.Format(); got != "eBook" {
		t.Errorf("Format() = %q, want eBook", got)
	}
}

func TestDocument(t *testing.T) {
	tests := []struct {
		name string
		book Book
		want string
	}{
		{
			name: "without description",
			book: Book{Title: "Dune", Author: "Frank Herbert", Genre: "science fiction"},
			want: "Dune by Frank Herbert. Genre: science fiction.",
		},
		{
			name: "with description",
			book: Book{
				Title:       "The Hobbit",
				Author:      "J.R.R. Tolkien",
				Genre:       "fantasy",
				Description: "A hobbit's unexpected journey.",
			},
			want: "The Hobbit by J.R.R. Tolkien. Genre: fantasy. A hobbit's unexpected journey.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.book.Document(); got != tt.want {
				t.Errorf("Document() = %q, want %q", got, tt.want)
			}
		})
	}
}
