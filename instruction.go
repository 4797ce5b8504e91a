package scn

// Instruction is one environment-mutation instruction inside an envupdate
// event: [tag, ...fields] with a fixed positional arity per tag.
//
// Instructions are a closed structural vocabulary. Unlike events and
// snapshot objects they have no fallback variant: an unknown tag or a wrong
// arity aborts the decode of the enclosing record.
type Instruction interface {
	// Tag returns the discriminator token ("init", "new", "del", "ren").
	Tag() string

	encodeInstruction() *Value
}

// InitInstruction initializes the environment: ["init", status].
type InitInstruction struct {
	Status int64
}

// NewInstruction defines a new object: ["new", name, class] with an
// optional trailing object of extra fields. Extra is non-nil exactly when
// the trailing object was observed, so an empty one survives a round trip.
type NewInstruction struct {
	Name  string
	Class string
	Extra []MapEntry
}

// DeleteInstruction removes an object: ["del", name].
type DeleteInstruction struct {
	Name string
}

// RenameInstruction renames an object: ["ren", name, new] with an optional
// trailing object of extra fields, non-nil exactly when observed.
type RenameInstruction struct {
	Name    string
	NewName string
	Extra   []MapEntry
}

func (*InitInstruction) Tag() string   { return "init" }
func (*NewInstruction) Tag() string    { return "new" }
func (*DeleteInstruction) Tag() string { return "del" }
func (*RenameInstruction) Tag() string { return "ren" }

var instructionRegistry = registry[Instruction]{
	"init": decodeInit,
	"new":  decodeNew,
	"del":  decodeDelete,
	"ren":  decodeRename,
}

// DecodeInstruction decodes one instruction array.
func DecodeInstruction(v *Value) (Instruction, error) {
	return decodeInstruction(newDecoder(nil), v)
}

func decodeInstruction(d *decoder, v *Value) (Instruction, error) {
	items, err := v.AsList()
	if err != nil {
		return nil, shapeErrf("instruction", "want array, got %s", v.Kind())
	}
	if len(items) == 0 {
		return nil, shapeErrf("instruction", "empty array")
	}
	tag, err := items[0].AsStr()
	if err != nil {
		return nil, shapeErrf("instruction", "element 0: %v", err)
	}
	fn, ok := instructionRegistry.lookup(tag)
	if !ok {
		return nil, &UnknownVariantError{Entity: "instruction", Tag: tag}
	}
	return fn(d, v)
}

// EncodeInstruction re-encodes an instruction into its array form.
func EncodeInstruction(in Instruction) *Value {
	return in.encodeInstruction()
}

// instructionBody checks the arity and, for the tags that allow it, splits
// off the trailing extra-fields object. want is the positional arity; the
// array may carry one more element holding extras.
func instructionBody(entity string, items []*Value, want int, allowExtra bool) ([]*Value, []MapEntry, error) {
	switch {
	case len(items) == want:
		return items, nil, nil
	case allowExtra && len(items) == want+1:
		extra, err := items[want].AsMap()
		if err != nil {
			return nil, nil, shapeErrf(entity, "trailing element: want object, got %s", items[want].Kind())
		}
		if extra == nil {
			extra = []MapEntry{}
		}
		return items[:want], extra, nil
	default:
		return nil, nil, arityErr(entity, len(items), want)
	}
}

func decodeInit(_ *decoder, v *Value) (Instruction, error) {
	items, _, err := instructionBody("instruction init", v.listVal, 2, false)
	if err != nil {
		return nil, err
	}
	status, err := items[1].AsInt()
	if err != nil {
		return nil, shapeErrf("instruction init", "status: %v", err)
	}
	return &InitInstruction{Status: status}, nil
}

func decodeNew(_ *decoder, v *Value) (Instruction, error) {
	items, extra, err := instructionBody("instruction new", v.listVal, 3, true)
	if err != nil {
		return nil, err
	}
	name, err := items[1].AsStr()
	if err != nil {
		return nil, shapeErrf("instruction new", "name: %v", err)
	}
	class, err := items[2].AsStr()
	if err != nil {
		return nil, shapeErrf("instruction new", "class: %v", err)
	}
	return &NewInstruction{Name: name, Class: class, Extra: extra}, nil
}

func decodeDelete(_ *decoder, v *Value) (Instruction, error) {
	items, _, err := instructionBody("instruction del", v.listVal, 2, false)
	if err != nil {
		return nil, err
	}
	name, err := items[1].AsStr()
	if err != nil {
		return nil, shapeErrf("instruction del", "name: %v", err)
	}
	return &DeleteInstruction{Name: name}, nil
}

func decodeRename(_ *decoder, v *Value) (Instruction, error) {
	items, extra, err := instructionBody("instruction ren", v.listVal, 3, true)
	if err != nil {
		return nil, err
	}
	name, err := items[1].AsStr()
	if err != nil {
		return nil, shapeErrf("instruction ren", "name: %v", err)
	}
	newName, err := items[2].AsStr()
	if err != nil {
		return nil, shapeErrf("instruction ren", "new: %v", err)
	}
	return &RenameInstruction{Name: name, NewName: newName, Extra: extra}, nil
}

func (in *InitInstruction) encodeInstruction() *Value {
	return List(Str("init"), Int(in.Status))
}

func (in *NewInstruction) encodeInstruction() *Value {
	items := []*Value{Str("new"), Str(in.Name), Str(in.Class)}
	if in.Extra != nil {
		items = append(items, Map(in.Extra...))
	}
	return List(items...)
}

func (in *DeleteInstruction) encodeInstruction() *Value {
	return List(Str("del"), Str(in.Name))
}

func (in *RenameInstruction) encodeInstruction() *Value {
	items := []*Value{Str("ren"), Str(in.Name), Str(in.NewName)}
	if in.Extra != nil {
		items = append(items, Map(in.Extra...))
	}
	return List(items...)
}
