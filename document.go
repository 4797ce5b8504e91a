package scn

import "sync"

// Languages the text tables are observed in.
const (
	LangEN = "en"
	LangCN = "cn"
	LangTW = "tw"
)

// Document is a whole scene-script file: document metadata plus the scene
// list. Everything except scenes passes through with only kind validation.
type Document struct {
	Hash      string
	Languages *Value // list drawn from en, cn, tw
	LLMap     *Value // per-scene label -> line list map
	Name      string
	Outlines  *Value // observed always empty
	Scenes    []*Scene
	Extra     []MapEntry
}

// DecodeDocument decodes a top-level document value.
func DecodeDocument(v *Value, opts ...DecodeOption) (*Document, error) {
	return newDecoder(opts).decodeDocument(v)
}

// EncodeDocument re-encodes a document into its object form. The output is
// structurally identical to the decoded input.
func EncodeDocument(doc *Document) *Value {
	var w objWriter
	w.put("hash", Str(doc.Hash))
	w.put("languages", doc.Languages)
	w.put("llmap", doc.LLMap)
	w.put("name", Str(doc.Name))
	w.put("outlines", doc.Outlines)
	scenes := make([]*Value, len(doc.Scenes))
	for i, sc := range doc.Scenes {
		scenes[i] = sc.encode()
	}
	w.put("scenes", List(scenes...))
	w.putExtras(doc.Extra)
	return w.value()
}

func (d *decoder) decodeDocument(v *Value) (*Document, error) {
	const entity = "document"
	r, err := newObjReader(entity, v)
	if err != nil {
		return nil, err
	}
	doc := &Document{}
	if doc.Hash, err = takeReq(r, "hash", (*Value).AsStr); err != nil {
		return nil, err
	}
	langs, err := r.require("languages")
	if err != nil {
		return nil, err
	}
	items, err := langs.AsList()
	if err != nil {
		return nil, shapeErrf(entity, "key %q: %v", "languages", err)
	}
	for i, item := range items {
		lang, err := item.AsStr()
		if err != nil {
			return nil, shapeErrf(entity, "languages[%d]: %v", i, err)
		}
		switch lang {
		case LangEN, LangCN, LangTW:
		default:
			return nil, shapeErrf(entity, "languages[%d]: unknown language %q", i, lang)
		}
	}
	doc.Languages = langs
	if doc.LLMap, err = r.takeRawList("llmap"); err != nil {
		return nil, err
	}
	if doc.LLMap == nil {
		return nil, shapeErrf(entity, "missing required key %q", "llmap")
	}
	if doc.Name, err = takeReq(r, "name", (*Value).AsStr); err != nil {
		return nil, err
	}
	if doc.Outlines, err = r.takeRawList("outlines"); err != nil {
		return nil, err
	}
	if doc.Outlines == nil {
		return nil, shapeErrf(entity, "missing required key %q", "outlines")
	}
	scenes, err := r.reqList("scenes")
	if err != nil {
		return nil, err
	}
	if doc.Scenes, err = d.decodeScenes(scenes); err != nil {
		return nil, err
	}
	doc.Extra = r.extras()
	return doc, nil
}

// decodeScenes decodes the scene list, fanning out across a bounded worker
// set when parallelism is enabled. Scenes are independent subtrees; output
// order always matches input order, and the first error in input order wins.
func (d *decoder) decodeScenes(items []*Value) ([]*Scene, error) {
	out := make([]*Scene, len(items))
	if d.parallel < 2 || len(items) < 2 {
		for i, item := range items {
			sc, err := d.decodeScene(item)
			if err != nil {
				return nil, wrapf(err, "scenes[%d]", i)
			}
			out[i] = sc
		}
		return out, nil
	}

	errs := make([]error, len(items))
	sem := make(chan struct{}, d.parallel)
	var wg sync.WaitGroup
	for i, item := range items {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int, item *Value) {
			defer wg.Done()
			defer func() { <-sem }()
			out[i], errs[i] = d.decodeScene(item)
		}(i, item)
	}
	wg.Wait()
	for i, err := range errs {
		if err != nil {
			return nil, wrapf(err, "scenes[%d]", i)
		}
	}
	return out, nil
}
