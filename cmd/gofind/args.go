package main

// valuePrimaries are find-style primaries that take an argument.
var valuePrimaries = map[string]string{
	"-type":  "type",
	"-name":  "name",
	"-iname": "iname",
}

// boolPrimaries are find-style primaries without an argument.
var boolPrimaries = map[string]string{
	"-print0": "print0",
}

// normalizeArgs rewrites find-style primaries such as "-name foo" into long
// flags ("--name=foo") so cobra can parse them. The value is always taken from
// the following argument, even if it starts with a dash. Everything after
// "--" is left alone.
func normalizeArgs(args []string) []string {
	out := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			out = append(out, args[i:]...)
			break
		}

		if name, ok := boolPrimaries[arg]; ok {
			out = append(out, "--"+name)
			continue
		}

		name, ok := valuePrimaries[arg]
		if !ok {
			out = append(out, arg)
			continue
		}
		if i+1 < len(args) {
			out = append(out, "--"+name+"="+args[i+1])
			i++
		} else {
			// Let the flag parser report the missing argument
			out = append(out, "--"+name)
		}
	}
	return out
}
