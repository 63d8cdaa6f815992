package grpc

import (
	"github.com/colstore/colstore/internal/table"
	"github.com/litetable/litetable-db/pkg/proto"
	"time"
)

// convertToProtoRow folds a newest-first version history into a proto row. Every version adds
// one value per qualifier of family, so the values of a qualifier are newest first as well.
// An empty qualifier filter selects the whole family. It returns nil when nothing matches.
//
// Puts replace the whole row, so a version without a qualifier marks it as removed: only the
// versions since the qualifier was last written without a gap contribute. A row whose newest
// version lacks the family does not match, even if older versions have it.
func convertToProtoRow(versions []table.RowVersion, family string, qualifiers []string,
	latest int) *proto.Row {
	if latest > 0 && len(versions) > latest {
		versions = versions[:latest]
	}
	if len(versions) == 0 {
		return nil
	}

	cols := &proto.VersionedQualifier{
		Qualifiers: make(map[string]*proto.QualifierValues),
	}

	// live holds the qualifiers present in every version seen so far
	live := make(map[string]bool)
	for name := range versions[0].Columns[family] {
		if selected(name, qualifiers) {
			live[name] = true
		}
	}

	for _, v := range versions {
		fam := v.Columns[family]
		ts := time.UnixMilli(v.WriteTimestamp).UnixNano()
		for name := range live {
			value, ok := fam[name]
			if !ok {
				delete(live, name)
				continue
			}

			qv, exists := cols.Qualifiers[name]
			if !exists {
				qv = &proto.QualifierValues{}
				cols.Qualifiers[name] = qv
			}
			qv.Values = append(qv.Values, &proto.TimestampedValue{
				Value:         []byte(value),
				TimestampUnix: ts,
			})
		}
		if len(live) == 0 {
			break
		}
	}

	if len(cols.Qualifiers) == 0 {
		return nil
	}

	return &proto.Row{
		Key: versions[0].RowKey,
		Cols: map[string]*proto.VersionedQualifier{
			family: cols,
		},
	}
}

func selected(qualifier string, filter []string) bool {
	if len(filter) == 0 {
		return true
	}
	for _, q := range filter {
		if q == qualifier {
			return true
		}
	}
	return false
}
