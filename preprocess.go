package hivemarkup

const tabWidth = 2

var tabSpaces = [tabWidth]byte{' ', ' '}

// preprocess copies src into out, dropping control bytes other than '\n'
// and expanding each tab to two spaces. The compiler only ever scans the
// result, so no handler has to care about tabs or stray control bytes.
func preprocess(out *buffer, src []byte) {
	i := 0
	for i < len(src) {
		from := i
		for i < len(src) && src[i] > 0x1f && src[i] != 0x7f {
			i++
		}
		if i > from {
			out.append(src[from:i])
		}
		if i >= len(src) {
			break
		}
		switch src[i] {
		case '\n':
			out.appendByte('\n')
		case '\t':
			out.append(tabSpaces[:])
		}
		i++
	}
}
