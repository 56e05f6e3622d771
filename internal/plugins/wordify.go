package plugins

import (
	"github.com/dmitrijs2005/narvi/internal/scheme"
	"github.com/dmitrijs2005/narvi/internal/wordfn"
)

func lowerUpperDigit() map[string]any {
	return map[string]any{
		"minimumscore": 3,
		"tests": []any{
			map[string]any{"regex": "[a-z]", "value": 1},
			map[string]any{"regex": "[A-Z]", "value": 1},
			map[string]any{"regex": "[0-9]", "value": 1},
		},
	}
}

// Wordify contributes the encoders and the default word schemes.
func Wordify() Contribution {
	return Contribution{
		Name: "wordify",
		WordFunctions: map[string]wordfn.Encoder{
			wordfn.Base64ID:       wordfn.Windowed{Radix: wordfn.Radix64},
			wordfn.Base32ID:       wordfn.Windowed{Radix: wordfn.Radix32},
			wordfn.Base32SimpleID: wordfn.Truncate{},
			wordfn.MindexID:       wordfn.Sample{},
			wordfn.Mindex32ID:     wordfn.Sample{Group: true},
		},
		WordSchemes: []scheme.WordScheme{
			{
				ID:             "base64-16-!@-aA1",
				Description:    "base64 alphabet ('!' and '@' as extra characters), 16 characters long, at least one each of lower case, upper case, and number",
				WordFunctionID: wordfn.Base64ID,
				Params:         scheme.Params{"pwlen": 16, "altchars": "!@", "complexity": lowerUpperDigit()},
			},
			{
				ID:             "base32-10",
				Description:    "base32 alphabet, 10 characters long, good for security question answers with symbol restrictions",
				WordFunctionID: wordfn.Base32SimpleID,
				Params:         scheme.Params{"pwlen": 10},
			},
			{
				ID:             "pin-4",
				Description:    "4-digit PIN",
				WordFunctionID: wordfn.MindexID,
				Params:         scheme.Params{"pwlen": 4, "alphabet": "0123456789"},
			},
			{
				ID:             "pin-6",
				Description:    "6-digit PIN",
				WordFunctionID: wordfn.MindexID,
				Params:         scheme.Params{"pwlen": 6, "alphabet": "0123456789"},
			},
			{
				ID:             "pin-6-wide",
				Description:    "6-digit PIN sampled from 32-bit groups",
				WordFunctionID: wordfn.Mindex32ID,
				Params:         scheme.Params{"pwlen": 6, "alphabet": "0123456789"},
			},
			{
				ID:             "alnum-20",
				Description:    "letters and digits, 20 characters long",
				WordFunctionID: wordfn.Mindex32ID,
				Params: scheme.Params{
					"pwlen":    20,
					"alphabet": "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789",
				},
			},
		},
	}
}
