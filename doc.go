// Package hivemarkup renders forum post markup to an HTML fragment.
//
// The compiler makes a single pass over the post. Bytes that may start a
// construct are looked up in a fixed trigger table and handed to a handler,
// which either consumes a prefix of the remaining text or declines, in which
// case the byte is written as literal text. Everything that is not part of
// a recognized construct goes through the HTML escaper, so raw input can
// never inject markup.
//
// Supported markup:
//
//	*emphasis*            <em>emphasis</em>
//	>quote                <span class="q">&gt;quote</span>
//	>>123                 <a class="ql" href="#123">&gt;&gt;123</a>
//	$$spoiler$$           <span class="s">spoiler</span>
//	```\ncode\n```        <pre class="code"><code class="prettyprint">code</code></pre>
//	~~~\nart\n~~~         <pre class="aa">art</pre>
//	http://example.com    <a href="...">...</a>
//	\*                    a literal markup byte
//
// A single newline becomes <br>; longer runs of newlines become two.
//
// Example:
//
//	doc, err := hivemarkup.Render(post, hivemarkup.UTF8)
//	if err != nil {
//		log.Fatal(err)
//	}
//	os.Stdout.Write(doc.HTML)
//
// Output size is bounded by WithMaxOutput; bytes past the bound are dropped
// and the render still completes.
package hivemarkup
