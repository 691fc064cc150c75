package layout

import "testing"

func TestValue_Constructors(t *testing.T) {
	type tc struct {
		value     Value
		isAuto    bool
		isDefined bool
		unit      Unit
		amount    float32
	}

	tests := map[string]tc{
		"Auto": {
			value:  Auto(),
			isAuto: true,
			unit:   UnitAuto,
		},
		"Points": {
			value:     Points(100),
			isDefined: true,
			unit:      UnitPoints,
			amount:    100,
		},
		"Percent": {
			value:     Percent(50),
			isDefined: true,
			unit:      UnitPercent,
			amount:    50,
		},
		"zero value is unset": {
			value: Value{},
			unit:  UnitUndefined,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.value.IsAuto(); got != tt.isAuto {
				t.Errorf("IsAuto() = %v, want %v", got, tt.isAuto)
			}
			if got := tt.value.IsDefined(); got != tt.isDefined {
				t.Errorf("IsDefined() = %v, want %v", got, tt.isDefined)
			}
			if tt.value.Unit != tt.unit {
				t.Errorf("Unit = %v, want %v", tt.value.Unit, tt.unit)
			}
			if tt.value.Amount != tt.amount {
				t.Errorf("Amount = %v, want %v", tt.value.Amount, tt.amount)
			}
		})
	}
}

func TestValue_Resolve(t *testing.T) {
	type tc struct {
		value    Value
		parent   Number
		expected Number
	}

	tests := map[string]tc{
		"points ignore parent": {
			value:    Points(50),
			parent:   Defined(100),
			expected: Defined(50),
		},
		"points with undefined parent": {
			value:    Points(50),
			parent:   Undefined,
			expected: Defined(50),
		},
		"negative points": {
			value:    Points(-10),
			parent:   Defined(100),
			expected: Defined(-10),
		},
		"50 percent of 100": {
			value:    Percent(50),
			parent:   Defined(100),
			expected: Defined(50),
		},
		"33 percent of 90": {
			value:    Percent(33),
			parent:   Defined(90),
			expected: Defined(29.7),
		},
		"percent of undefined": {
			value:    Percent(50),
			parent:   Undefined,
			expected: Undefined,
		},
		"auto": {
			value:    Auto(),
			parent:   Defined(100),
			expected: Undefined,
		},
		"unset": {
			value:    Value{},
			parent:   Defined(100),
			expected: Undefined,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := tt.value.Resolve(tt.parent)
			if got != tt.expected {
				t.Errorf("Resolve(%v) = %v, want %v", tt.parent, got, tt.expected)
			}
		})
	}
}

func TestValue_String(t *testing.T) {
	tests := map[string]struct {
		value Value
		want  string
	}{
		"auto":    {value: Auto(), want: "auto"},
		"points":  {value: Points(12.5), want: "12.5px"},
		"percent": {value: Percent(50), want: "50%"},
		"unset":   {value: Value{}, want: "undefined"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.value.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNumber(t *testing.T) {
	type tc struct {
		got  Number
		want Number
	}

	tests := map[string]tc{
		"add to defined":        {got: Defined(2).Add(3), want: Defined(5)},
		"add to undefined":      {got: Undefined.Add(3), want: Undefined},
		"sub":                   {got: Defined(10).Sub(4), want: Defined(6)},
		"add numbers":           {got: Defined(1).AddN(Defined(2)), want: Defined(3)},
		"add undefined number":  {got: Defined(1).AddN(Undefined), want: Undefined},
		"or keeps defined":      {got: Defined(1).Or(Defined(2)), want: Defined(1)},
		"or falls back":         {got: Undefined.Or(Defined(2)), want: Defined(2)},
		"max with defined":      {got: Defined(1).MaybeMax(Defined(5)), want: Defined(5)},
		"max with undefined":    {got: Defined(1).MaybeMax(Undefined), want: Defined(1)},
		"min with defined":      {got: Defined(9).MaybeMin(Defined(5)), want: Defined(5)},
		"min of undefined self": {got: Undefined.MaybeMin(Defined(5)), want: Undefined},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}
}

func TestNumber_Helpers(t *testing.T) {
	if got := Undefined.OrElse(7); got != 7 {
		t.Errorf("Undefined.OrElse(7) = %v, want 7", got)
	}
	if got := maybeMax(3, Undefined); got != 3 {
		t.Errorf("maybeMax(3, undefined) = %v, want 3", got)
	}
	if got := maybeMin(3, Defined(1)); got != 1 {
		t.Errorf("maybeMin(3, 1) = %v, want 1", got)
	}
	if got := clamp[float32](5, 10, 1); got != 10 {
		t.Errorf("clamp(5, 10, 1) = %v, want 10 (min wins)", got)
	}
	if isNormal(0) {
		t.Error("isNormal(0) = true, want false")
	}
	if !isNormal(-3) {
		t.Error("isNormal(-3) = false, want true")
	}
}
