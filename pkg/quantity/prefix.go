package quantity

// Prefix is a decimal SI prefix.
type Prefix struct {
	Symbol string
	Name   string
	Factor float64
}

var (
	Yocto = Prefix{"y", "yocto", 1e-24}
	Zepto = Prefix{"z", "zepto", 1e-21}
	Atto  = Prefix{"a", "atto", 1e-18}
	Femto = Prefix{"f", "femto", 1e-15}
	Pico  = Prefix{"p", "pico", 1e-12}
	Nano  = Prefix{"n", "nano", 1e-9}
	Micro = Prefix{"µ", "micro", 1e-6}
	Milli = Prefix{"m", "milli", 1e-3}
	Centi = Prefix{"c", "centi", 1e-2}
	Deci  = Prefix{"d", "deci", 1e-1}
	Deca  = Prefix{"da", "deca", 1e1}
	Hecto = Prefix{"h", "hecto", 1e2}
	Kilo  = Prefix{"k", "kilo", 1e3}
	Mega  = Prefix{"M", "mega", 1e6}
	Giga  = Prefix{"G", "giga", 1e9}
	Tera  = Prefix{"T", "tera", 1e12}
	Peta  = Prefix{"P", "peta", 1e15}
	Exa   = Prefix{"E", "exa", 1e18}
	Zetta = Prefix{"Z", "zetta", 1e21}
	Yotta = Prefix{"Y", "yotta", 1e24}
)

// prefixes maps the code used inside brackets in parsed text to its prefix.
// "u" is accepted as an ASCII spelling of micro.
var prefixes = map[string]Prefix{
	"y": Yocto, "z": Zepto, "a": Atto, "f": Femto, "p": Pico, "n": Nano,
	"µ": Micro, "u": Micro, "m": Milli, "c": Centi, "d": Deci,
	"da": Deca, "h": Hecto, "k": Kilo, "M": Mega, "G": Giga, "T": Tera,
	"P": Peta, "E": Exa, "Z": Zetta, "Y": Yotta,
}

// LookupPrefix returns the prefix for a code such as "k" or "da".
func LookupPrefix(code string) (Prefix, bool) {
	p, ok := prefixes[code]
	return p, ok
}
