package banyan

import (
	"encoding/json"
	"fmt"
)

// The persisted form mirrors the sparse tree exactly: each node stores
// its children keyed by "col,row" address, so reloading reconstructs
// the identical topology. The top-of-file node carries no address (it
// is the key-less root of the document). Content payloads are opaque
// JSON values produced and consumed by caller-supplied hooks.

// treeRecord is the on-disk JSON form of one tile.
type treeRecord struct {
	Content  json.RawMessage        `json:"content,omitempty"`
	Children map[string]*treeRecord `json:"children,omitempty"`
}

// treeFile is the top-level JSON document.
type treeFile struct {
	Extent Extent      `json:"extent"`
	Root   *treeRecord `json:"root"`
}

// EncodeTree serializes the whole tree containing t (from its topmost
// ancestor down) along with the document's tile extent. encode turns a
// tile's Content payload into JSON; a nil encode falls back to
// json.Marshal. Tiles with nil Content store no content field.
func EncodeTree(g Grid, t *Tile, encode func(any) ([]byte, error)) ([]byte, error) {
	if encode == nil {
		encode = json.Marshal
	}
	root, err := encodeTile(t.Top(), encode)
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(treeFile{Extent: g.Extent, Root: root}, "", "  ")
}

func encodeTile(t *Tile, encode func(any) ([]byte, error)) (*treeRecord, error) {
	rec := &treeRecord{}
	if t.Content != nil {
		raw, err := encode(t.Content)
		if err != nil {
			return nil, fmt.Errorf("encode tile %d content: %w", t.id, err)
		}
		rec.Content = raw
	}
	if len(t.children) > 0 {
		rec.Children = make(map[string]*treeRecord, len(t.children))
		for addr, child := range t.children {
			childRec, err := encodeTile(child, encode)
			if err != nil {
				return nil, err
			}
			rec.Children[addr.String()] = childRec
		}
	}
	return rec, nil
}

// DecodeTree reconstructs a tree from EncodeTree output, returning the
// document grid and the top tile. decode turns a stored JSON value back
// into a Content payload; a nil decode leaves the raw json.RawMessage
// attached.
func DecodeTree(data []byte, decode func([]byte) (any, error)) (Grid, *Tile, error) {
	var file treeFile
	if err := json.Unmarshal(data, &file); err != nil {
		return Grid{}, nil, fmt.Errorf("parse tree: %w", err)
	}
	if file.Root == nil {
		return Grid{}, nil, fmt.Errorf("parse tree: missing root")
	}
	if file.Extent.Width <= 0 || file.Extent.Height <= 0 {
		return Grid{}, nil, fmt.Errorf("parse tree: invalid extent %+v", file.Extent)
	}

	top := NewTile()
	if err := decodeTile(top, file.Root, decode); err != nil {
		return Grid{}, nil, err
	}
	return Grid{Extent: file.Extent}, top, nil
}

func decodeTile(t *Tile, rec *treeRecord, decode func([]byte) (any, error)) error {
	if rec.Content != nil {
		if decode == nil {
			t.Content = rec.Content
		} else {
			content, err := decode(rec.Content)
			if err != nil {
				return fmt.Errorf("decode tile content: %w", err)
			}
			t.Content = content
		}
	}
	for key, childRec := range rec.Children {
		addr, err := parseAddress(key)
		if err != nil {
			return err
		}
		if err := decodeTile(t.Child(addr), childRec, decode); err != nil {
			return err
		}
	}
	return nil
}

func parseAddress(key string) (GridAddress, error) {
	var addr GridAddress
	if _, err := fmt.Sscanf(key, "%d,%d", &addr.Col, &addr.Row); err != nil {
		return GridAddress{}, fmt.Errorf("parse tree: bad address key %q: %w", key, err)
	}
	if !addr.InRange() {
		return GridAddress{}, fmt.Errorf("parse tree: address %q out of range", key)
	}
	return addr, nil
}
