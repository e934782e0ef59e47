package category

// Boolean is the imprecise category over {true, false}. Its values are
// interned.
var Boolean = New("ImpreciseBoolean", []bool{true, false}, Cache(true))
